package common

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/core"
	web "attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	Dm *core.DatabaseManager
}

func (h *Handler) GetDB(c *gin.Context) (*gorm.DB, *sql.Conn, error) {
	return h.Dm.GetDB(c.Request.Context())
}

// RespondError maps domain errors onto the HTTP error contract. Unknown
// errors are logged and returned as a generic 500 so persistence details
// never leak to clients.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		c.JSON(http.StatusConflict, web.NewErrorResponse(web.CodeConflict, err.Error()))
	case errors.Is(err, attendance.ErrNoOpenSession):
		c.JSON(http.StatusConflict, web.NewErrorResponse(web.CodeConflict, err.Error()))
	case errors.Is(err, attendance.ErrRecordNotFound),
		errors.Is(err, attendance.ErrLeaveNotFound):
		c.JSON(http.StatusNotFound, web.NewErrorResponse(web.CodeNotFound, err.Error()))
	case errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidLeaveType),
		errors.Is(err, attendance.ErrInvalidLeaveDate),
		errors.Is(err, attendance.ErrLeaveNotPending):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.CodeValidation, err.Error()))
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError,
			web.NewErrorResponse(web.CodeInternal, "unexpected server error"))
	}
}
