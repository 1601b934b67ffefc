package core

import (
	"testing"
	"time"

	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/utils"
	"github.com/stretchr/testify/assert"
)

// Input validation runs before any persistence, so a nil db is fine here.
func TestCreateLeaveRejectsMalformedDate(t *testing.T) {
	tests := []string{"2026-13-99", "02-03-2026", "tomorrow", ""}

	for _, date := range tests {
		t.Run(date, func(t *testing.T) {
			_, err := CreateLeave(nil, 42, model.LeaveTypeAnnual, []string{date}, "trip")
			assert.ErrorIs(t, err, ErrInvalidLeaveDate)
		})
	}
}

func TestCreateLeaveRejectsUnknownType(t *testing.T) {
	_, err := CreateLeave(nil, 42, "vacation", []string{"2026-03-02"}, "")
	assert.ErrorIs(t, err, ErrInvalidLeaveType)
}

func TestUpdateLeaveRejectsDecidedRequest(t *testing.T) {
	request := &model.LeaveRequest{ID: "lr-1", Status: model.LeaveStatusApproved}

	_, err := UpdateLeave(nil, request, LeavePatch{Reason: utils.Ptr("changed my mind")})
	assert.ErrorIs(t, err, ErrLeaveNotPending)
}

func TestDecideLeaveRejectsBadStatus(t *testing.T) {
	request := &model.LeaveRequest{ID: "lr-1", Status: model.LeaveStatusPending}

	_, err := DecideLeave(nil, request, 7, "maybe", "", time.Now())
	assert.Error(t, err)
}
