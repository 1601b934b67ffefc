package leave

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
	common "attendly.com/attendly/attendance/web/common"
	"attendly.com/attendly/core"
	"attendly.com/attendly/infrastructure/communication"
	"attendly.com/attendly/utils"
	web "attendly.com/attendly/web/common"
	"attendly.com/attendly/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Endpoint struct {
	base   common.Handler
	slack  *communication.Slack
	mailer *communication.EmailSender
	bucket string
	now    func() time.Time
}

type Options struct {
	Slack             *communication.Slack
	Mailer            *communication.EmailSender
	AttachmentsBucket string
}

func Register(user *gin.RouterGroup, admin *gin.RouterGroup, dm *core.DatabaseManager, opts Options) {
	endpoint := &Endpoint{
		base:   common.Handler{Dm: dm},
		slack:  opts.Slack,
		mailer: opts.Mailer,
		bucket: opts.AttachmentsBucket,
		now:    time.Now,
	}

	user.POST("/leave", endpoint.Create)
	user.GET("/leave/me", endpoint.Mine)
	user.GET("/leave/:id", endpoint.Get)
	user.PUT("/leave/:id", endpoint.Update)
	user.DELETE("/leave/:id", endpoint.Delete)
	user.POST("/leave/:id/attachment", endpoint.UploadAttachment)

	admin.GET("/leave", endpoint.List)
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto LeaveCreateDTO
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

	request, err := attendance.CreateLeave(db, middlewares.UserID(c), dto.Type, dto.Dates, dto.Reason)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	ep.notify(fmt.Sprintf("leave request %s submitted by user %d (%s, %d day(s))",
		request.ID, request.UserID, request.Type, len(dto.Dates)))

	c.JSON(http.StatusOK, web.NewSuccessResponse(toLeaveDTO(request)))
}

func (ep *Endpoint) Mine(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	requests, err := attendance.ListLeaveForUser(db, middlewares.UserID(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	dtos := utils.Map(requests, func(r model.LeaveRequest) LeaveDTO {
		return toLeaveDTO(&r)
	})
	c.JSON(http.StatusOK, web.NewSuccessResponse(dtos))
}

func (ep *Endpoint) List(c *gin.Context) {
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

	requests, total, err := attendance.ListAllLeave(db, limit, offset)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	dtos := utils.Map(requests, func(r model.LeaveRequest) LeaveDTO {
		return toLeaveDTO(&r)
	})
	c.JSON(http.StatusOK, web.NewSearchResponse(dtos, total))
}

// findOwned loads the request and enforces ownership. Admins see every
// request; other callers get a 404 for requests they do not own, so
// request ids are not probeable.
func (ep *Endpoint) findOwned(c *gin.Context, db *gorm.DB) (*model.LeaveRequest, bool) {
	request, err := attendance.FindLeave(db, c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return nil, false
	}
	if request.UserID != middlewares.UserID(c) && !middlewares.IsAdmin(c) {
		c.JSON(http.StatusNotFound, web.NewErrorResponse(web.CodeNotFound, attendance.ErrLeaveNotFound.Error()))
		return nil, false
	}
	return request, true
}

func (ep *Endpoint) Get(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	request, ok := ep.findOwned(c, db)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(toLeaveDTO(request)))
}

// Update is the owner edit and the admin decision in one route. A body
// carrying status is a decision and requires the admin role.
func (ep *Endpoint) Update(c *gin.Context) {
	var dto LeaveUpdateDTO
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

	request, ok := ep.findOwned(c, db)
	if !ok {
		return
	}

	if dto.Status != nil {
		if !middlewares.IsAdmin(c) {
			c.JSON(http.StatusForbidden,
				web.NewErrorResponse(web.CodePermission, "only administrators can decide leave requests"))
			return
		}

		rejectReason := ""
		if dto.RejectReason != nil {
			rejectReason = *dto.RejectReason
		}
		request, err = attendance.DecideLeave(db, request, middlewares.UserID(c), *dto.Status, rejectReason, ep.now())
		if err != nil {
			common.RespondError(c, err)
			return
		}

		ep.notify(fmt.Sprintf("leave request %s %s by user %d", request.ID, request.Status, middlewares.UserID(c)))
		ep.mailDecision(c, db, request)

		c.JSON(http.StatusOK, web.NewSuccessResponse(toLeaveDTO(request)))
		return
	}

	request, err = attendance.UpdateLeave(db, request, attendance.LeavePatch{
		Type:   dto.Type,
		Dates:  dto.Dates,
		Reason: dto.Reason,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toLeaveDTO(request)))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer conn.Close()

	request, ok := ep.findOwned(c, db)
	if !ok {
		return
	}
	if request.Status != model.LeaveStatusPending && !middlewares.IsAdmin(c) {
		c.JSON(http.StatusBadRequest,
			web.NewErrorResponse(web.CodeValidation, attendance.ErrLeaveNotPending.Error()))
		return
	}

	if err := attendance.DeleteLeave(db, request.ID); err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}

// notify posts to Slack on a best-effort basis.
func (ep *Endpoint) notify(message string) {
	if ep.slack == nil {
		return
	}
	if err := ep.slack.Info(message); err != nil {
		log.Printf("slack notification failed: %v", err)
	}
}

// mailDecision emails the requester their leave outcome, best effort.
func (ep *Endpoint) mailDecision(c *gin.Context, db *gorm.DB, request *model.LeaveRequest) {
	if ep.mailer == nil {
		return
	}

	owner, err := core.FindUserByID(db, request.UserID)
	if err != nil || owner == nil || owner.Email == nil {
		return
	}

	subject := fmt.Sprintf("Your leave request was %s", request.Status)
	body := fmt.Sprintf("Hi %s,\n\nYour %s leave request has been %s.", owner.FirstName, request.Type, request.Status)
	if request.Status == model.LeaveStatusRejected && request.RejectReason != "" {
		body += "\nReason: " + request.RejectReason
	}

	if err := ep.mailer.Send(c.Request.Context(), *owner.Email, subject, body); err != nil {
		log.Printf("leave decision email failed: %v", err)
	}
}
