package core

import "errors"

var (
	// ErrAlreadyCheckedIn rejects a check-in while an open session exists
	// for the same user and day.
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// ErrNoOpenSession rejects a check-out with no open session to close.
	ErrNoOpenSession = errors.New("no open attendance session for today")

	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidStatus  = errors.New("status is not a valid attendance status")

	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrLeaveNotPending  = errors.New("leave request is no longer pending")
	ErrInvalidLeaveType = errors.New("type is not a valid leave type")
	ErrInvalidLeaveDate = errors.New("leave dates must be yyyy-MM-dd")
)
