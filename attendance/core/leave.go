package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"attendly.com/attendly/attendance/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func marshalDates(dates []string) ([]byte, error) {
	for _, d := range dates {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLeaveDate, d)
		}
	}
	return json.Marshal(dates)
}

func CreateLeave(db *gorm.DB, userID int32, leaveType string, dates []string, reason string) (*model.LeaveRequest, error) {
	if !ValidLeaveType(leaveType) {
		return nil, ErrInvalidLeaveType
	}
	raw, err := marshalDates(dates)
	if err != nil {
		return nil, err
	}

	request := model.LeaveRequest{
		ID:     uuid.NewString(),
		UserID: userID,
		Type:   leaveType,
		Dates:  raw,
		Reason: reason,
		Status: model.LeaveStatusPending,
	}

	if err := db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return &request, nil
}

func FindLeave(db *gorm.DB, id string) (*model.LeaveRequest, error) {
	var request model.LeaveRequest
	result := db.Where("id = ?", id).First(&request)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrLeaveNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &request, nil
}

func ListLeaveForUser(db *gorm.DB, userID int32) ([]model.LeaveRequest, error) {
	var requests []model.LeaveRequest
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func ListAllLeave(db *gorm.DB, limit, offset int) ([]model.LeaveRequest, int64, error) {
	var total int64
	if err := db.Model(&model.LeaveRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []model.LeaveRequest
	if err := db.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

type LeavePatch struct {
	Type   *string
	Dates  []string
	Reason *string
}

// UpdateLeave applies an owner edit. Only pending requests are editable.
func UpdateLeave(db *gorm.DB, request *model.LeaveRequest, patch LeavePatch) (*model.LeaveRequest, error) {
	if request.Status != model.LeaveStatusPending {
		return nil, ErrLeaveNotPending
	}

	updates := map[string]interface{}{}
	if patch.Type != nil {
		if !ValidLeaveType(*patch.Type) {
			return nil, ErrInvalidLeaveType
		}
		updates["type"] = *patch.Type
	}
	if patch.Dates != nil {
		raw, err := marshalDates(patch.Dates)
		if err != nil {
			return nil, err
		}
		updates["dates"] = raw
	}
	if patch.Reason != nil {
		updates["reason"] = *patch.Reason
	}

	if len(updates) == 0 {
		return request, nil
	}

	if err := db.Model(request).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}
	return request, nil
}

// DecideLeave records an admin approval or rejection.
func DecideLeave(db *gorm.DB, request *model.LeaveRequest, approverID int32, status, rejectReason string, now time.Time) (*model.LeaveRequest, error) {
	if status != model.LeaveStatusApproved && status != model.LeaveStatusRejected {
		return nil, fmt.Errorf("invalid leave decision %q", status)
	}
	if request.Status != model.LeaveStatusPending {
		return nil, ErrLeaveNotPending
	}

	request.Status = status
	request.ApproverID = &approverID
	request.DecidedAt = &now
	request.RejectReason = rejectReason

	updates := map[string]interface{}{
		"status":        status,
		"approver_id":   approverID,
		"decided_at":    now,
		"reject_reason": rejectReason,
	}
	if err := db.Model(&model.LeaveRequest{}).Where("id = ?", request.ID).
		Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to decide leave request: %w", err)
	}
	return request, nil
}

func DeleteLeave(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&model.LeaveRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeaveNotFound
	}
	return nil
}
