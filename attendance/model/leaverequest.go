package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	LeaveTypeAnnual    = "annual"
	LeaveTypeSick      = "sick"
	LeaveTypeEmergency = "emergency"
	LeaveTypeUnpaid    = "unpaid"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID     string `gorm:"primaryKey;size:36;column:id" json:"id"`
	UserID int32  `gorm:"column:user_id;not null;index" json:"userId"`
	Type   string `gorm:"column:type;type:varchar(20);not null" json:"type"`
	// Dates holds the requested days as a JSON array of "2006-01-02" strings.
	Dates  datatypes.JSON `gorm:"column:dates;not null" json:"dates"`
	Reason string         `gorm:"column:reason;type:text" json:"reason"`
	Status string         `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`

	ApproverID   *int32     `gorm:"column:approver_id" json:"approverId"`
	DecidedAt    *time.Time `gorm:"column:decided_at" json:"decidedAt"`
	RejectReason string     `gorm:"column:reject_reason;type:text" json:"rejectReason"`

	// AttachmentKey is the S3 object key of an uploaded supporting document.
	AttachmentKey *string `gorm:"column:attachment_key;size:512" json:"attachmentKey"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
