package attendance

import (
	"net/http"
	"strconv"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
	common "attendly.com/attendly/attendance/web/common"
	"attendly.com/attendly/utils"
	web "attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
)

// List returns every user's records, newest first, with limit/offset
// paging and the unpaged total.
func (ep *Endpoint) List(c *gin.Context) {
	startDate, endDate, ok := dateRange(c)
	if !ok {
		return
	}

	limit := 1000
	offset := 0
	if val, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = val
	}
	if val, err := strconv.Atoi(c.Query("offset")); err == nil {
		offset = val
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	records, total, err := attendance.ListAll(db, startDate, endDate, limit, offset)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	dtos := utils.Map(records, func(r model.AttendanceRecord) RecordDTO {
		return toRecordDTO(&r)
	})
	c.JSON(http.StatusOK, web.NewSearchResponse(dtos, total))
}

// Update applies an admin patch. The patch surface is status and notes
// only; check-in/check-out times are immutable through this endpoint so
// the stored totalHours stays consistent with them.
func (ep *Endpoint) Update(c *gin.Context) {
	id := c.Param("id")

	var dto RecordUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.CodeValidation, web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	record, err := attendance.UpdateRecord(db, id, attendance.RecordPatch{
		Status: dto.Status,
		Notes:  dto.Notes,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(record)))
}
