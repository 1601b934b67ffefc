package core

import (
	"testing"
	"time"

	"attendly.com/attendly/attendance/model"
	"github.com/stretchr/testify/assert"
)

func TestTotalHours(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected float64
	}{
		{
			name:     "Standard day 09:00 to 17:30",
			checkIn:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 1, 17, 30, 0, 0, time.UTC),
			expected: 8.5,
		},
		{
			name:     "Rounds to two decimals",
			checkIn:  time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 1, 16, 20, 0, 0, time.UTC),
			expected: 8.33,
		},
		{
			name:     "Short session",
			checkIn:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
			expected: 0.25,
		},
		{
			name:     "Zero duration",
			checkIn:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Seconds round up",
			checkIn:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 1, 1, 17, 0, 30, 0, time.UTC),
			expected: 8.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalHours(tt.checkIn, tt.checkOut))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, ValidStatus(s), s)
	}

	assert.False(t, ValidStatus("holiday"))
	assert.False(t, ValidStatus("Present"))
	assert.False(t, ValidStatus(""))
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2026-03-02", DayOf(ts))
}

func TestEnsureCanCheckIn(t *testing.T) {
	assert.NoError(t, EnsureCanCheckIn(nil))

	open := &model.AttendanceRecord{ID: "rec-1", UserID: 42}
	assert.ErrorIs(t, EnsureCanCheckIn(open), ErrAlreadyCheckedIn)
}

func TestEnsureCanCheckOut(t *testing.T) {
	assert.ErrorIs(t, EnsureCanCheckOut(nil), ErrNoOpenSession)

	open := &model.AttendanceRecord{ID: "rec-1", UserID: 42}
	assert.NoError(t, EnsureCanCheckOut(open))
}

func TestValidLeaveType(t *testing.T) {
	assert.True(t, ValidLeaveType(model.LeaveTypeAnnual))
	assert.True(t, ValidLeaveType(model.LeaveTypeSick))
	assert.True(t, ValidLeaveType(model.LeaveTypeEmergency))
	assert.True(t, ValidLeaveType(model.LeaveTypeUnpaid))
	assert.False(t, ValidLeaveType("vacation"))
	assert.False(t, ValidLeaveType(""))
}
