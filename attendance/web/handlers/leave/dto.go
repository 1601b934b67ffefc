package leave

import (
	"encoding/json"
	"time"

	"attendly.com/attendly/attendance/model"
)

type LeaveCreateDTO struct {
	Type   string   `json:"type" binding:"required,oneof=annual sick emergency unpaid"`
	Dates  []string `json:"dates" binding:"required,min=1,dive,datetime=2006-01-02"`
	Reason string   `json:"reason"`
}

// LeaveUpdateDTO carries both owner edits (type/dates/reason) and admin
// decisions (status/rejectReason). The handler enforces who may send what.
type LeaveUpdateDTO struct {
	Type   *string  `json:"type,omitempty" binding:"omitempty,oneof=annual sick emergency unpaid"`
	Dates  []string `json:"dates,omitempty" binding:"omitempty,dive,datetime=2006-01-02"`
	Reason *string  `json:"reason,omitempty"`

	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=approved rejected"`
	RejectReason *string `json:"rejectReason,omitempty"`
}

type LeaveDTO struct {
	ID            string     `json:"id"`
	UserID        int32      `json:"userId"`
	Type          string     `json:"type"`
	Dates         []string   `json:"dates"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	ApproverID    *int32     `json:"approverId"`
	DecidedAt     *time.Time `json:"decidedAt"`
	RejectReason  string     `json:"rejectReason"`
	AttachmentKey *string    `json:"attachmentKey"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toLeaveDTO(r *model.LeaveRequest) LeaveDTO {
	var dates []string
	// Dates is persisted as a JSON array; a decode failure leaves it empty.
	_ = json.Unmarshal(r.Dates, &dates)

	return LeaveDTO{
		ID:            r.ID,
		UserID:        r.UserID,
		Type:          r.Type,
		Dates:         dates,
		Reason:        r.Reason,
		Status:        r.Status,
		ApproverID:    r.ApproverID,
		DecidedAt:     r.DecidedAt,
		RejectReason:  r.RejectReason,
		AttachmentKey: r.AttachmentKey,
		CreatedAt:     r.CreatedAt,
	}
}
