package core

import (
	"math"
	"time"

	"attendly.com/attendly/attendance/model"
)

// DateLayout is the calendar-day format used across records and queries.
const DateLayout = "2006-01-02"

var statuses = []string{
	model.StatusPresent,
	model.StatusAbsent,
	model.StatusLate,
	model.StatusHalfDay,
	model.StatusOnLeave,
}

func ValidStatus(s string) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

func Statuses() []string {
	out := make([]string, len(statuses))
	copy(out, statuses)
	return out
}

// TotalHours derives the worked hours for a closed session, rounded to
// two decimal places. Callers set it at the point of commit; the
// persistence layer never recomputes it.
func TotalHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}

// DayOf normalises a timestamp to the calendar day a record belongs to.
func DayOf(t time.Time) string {
	return t.Format(DateLayout)
}

// EnsureCanCheckIn rejects a check-in while the user already has an
// open session for the day.
func EnsureCanCheckIn(open *model.AttendanceRecord) error {
	if open != nil {
		return ErrAlreadyCheckedIn
	}
	return nil
}

// EnsureCanCheckOut requires an open session to close.
func EnsureCanCheckOut(open *model.AttendanceRecord) error {
	if open == nil {
		return ErrNoOpenSession
	}
	return nil
}

func ValidLeaveType(s string) bool {
	switch s {
	case model.LeaveTypeAnnual, model.LeaveTypeSick, model.LeaveTypeEmergency, model.LeaveTypeUnpaid:
		return true
	}
	return false
}

func ValidLeaveStatus(s string) bool {
	switch s {
	case model.LeaveStatusPending, model.LeaveStatusApproved, model.LeaveStatusRejected:
		return true
	}
	return false
}
