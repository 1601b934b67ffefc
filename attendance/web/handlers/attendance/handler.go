package attendance

import (
	"errors"
	"io"
	"net/http"
	"time"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
	common "attendly.com/attendly/attendance/web/common"
	"attendly.com/attendly/core"
	"attendly.com/attendly/utils"
	web "attendly.com/attendly/web/common"
	"attendly.com/attendly/web/middlewares"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	base common.Handler
	now  func() time.Time
}

// Register wires the attendance routes. The admin group carries the
// RequireAdmin middleware on top of Authentication.
func Register(user *gin.RouterGroup, admin *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}, now: time.Now}

	user.POST("/attendance/checkin", endpoint.CheckIn)
	user.PUT("/attendance/checkout", endpoint.CheckOut)
	user.GET("/attendance/today", endpoint.Today)
	user.GET("/attendance/me", endpoint.Mine)

	admin.GET("/attendance", endpoint.List)
	admin.GET("/attendance/export", endpoint.Export)
	admin.PUT("/attendance/:id", endpoint.Update)
}

// bindOptionalBody binds a JSON body that may legitimately be absent.
func bindOptionalBody(c *gin.Context, dto interface{}) bool {
	if err := c.ShouldBindJSON(dto); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.CodeValidation, web.FormatBindingError(err)))
		return false
	}
	return true
}

func (ep *Endpoint) CheckIn(c *gin.Context) {
	var dto CheckInDTO
	if !bindOptionalBody(c, &dto) {
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	record, err := attendance.CheckIn(db, middlewares.UserID(c), dto.Notes, ep.now())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(record)))
}

func (ep *Endpoint) CheckOut(c *gin.Context) {
	var dto CheckOutDTO
	if !bindOptionalBody(c, &dto) {
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	record, err := attendance.CheckOut(db, middlewares.UserID(c), dto.Notes, ep.now())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(record)))
}

// Today returns the caller's record for the current day. Not having
// checked in yet is not an error; data is null in that case.
func (ep *Endpoint) Today(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	record, err := attendance.TodaysRecord(db, middlewares.UserID(c), attendance.DayOf(ep.now()))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	if record == nil {
		c.JSON(http.StatusOK, web.NewSuccessResponse(nil))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(record)))
}

func (ep *Endpoint) Mine(c *gin.Context) {
	startDate, endDate, ok := dateRange(c)
	if !ok {
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	records, err := attendance.ListForUser(db, middlewares.UserID(c), startDate, endDate)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	dtos := utils.Map(records, func(r model.AttendanceRecord) RecordDTO {
		return toRecordDTO(&r)
	})
	c.JSON(http.StatusOK, web.NewSuccessResponse(dtos))
}

// dateRange reads optional startDate/endDate query params. Responds 400
// and returns ok=false on a malformed date.
func dateRange(c *gin.Context) (*string, *string, bool) {
	var startDate, endDate *string
	if v := c.Query("startDate"); v != "" {
		if _, err := time.Parse(attendance.DateLayout, v); err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.CodeValidation, "startDate must be yyyy-MM-dd"))
			return nil, nil, false
		}
		startDate = &v
	}
	if v := c.Query("endDate"); v != "" {
		if _, err := time.Parse(attendance.DateLayout, v); err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.CodeValidation, "endDate must be yyyy-MM-dd"))
			return nil, nil, false
		}
		endDate = &v
	}
	return startDate, endDate, true
}
