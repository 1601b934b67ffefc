package leave

import (
	"fmt"
	"net/http"
	"path/filepath"

	"attendly.com/attendly/attendance/model"
	common "attendly.com/attendly/attendance/web/common"
	"attendly.com/attendly/infrastructure/filesystem"
	web "attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
)

// UploadAttachment stores a supporting document (e.g. a medical
// certificate) in S3 and links it to the leave request.
func (ep *Endpoint) UploadAttachment(c *gin.Context) {
	if ep.bucket == "" {
		c.JSON(http.StatusInternalServerError,
			web.NewErrorResponse(web.CodeInternal, "attachment storage is not configured"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.CodeValidation, "missing file field"))
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".pdf" {
		c.JSON(http.StatusBadRequest,
			web.NewErrorResponse(web.CodeValidation, fmt.Sprintf("unsupported attachment type %q", ext)))
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

	src, err := file.Open()
	if err != nil {
		common.RespondError(c, err)
		return
	}
	defer src.Close()

	key := fmt.Sprintf("leave/%s/%s", request.ID, filepath.Base(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if err := filesystem.WriteFile(ep.bucket, key, c.Request.Context(), contentType, src); err != nil {
		common.RespondError(c, err)
		return
	}

	if err := db.Model(&model.LeaveRequest{}).Where("id = ?", request.ID).
		Update("attachment_key", key).Error; err != nil {
		common.RespondError(c, err)
		return
	}
	request.AttachmentKey = &key

	c.JSON(http.StatusOK, web.NewSuccessResponse(toLeaveDTO(request)))
}
