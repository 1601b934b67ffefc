package attendance

import (
	"time"

	"attendly.com/attendly/attendance/model"
	web "attendly.com/attendly/web/common"
)

type CheckInDTO struct {
	Notes string `json:"notes"`
}

type CheckOutDTO struct {
	Notes string `json:"notes"`
}

type RecordUpdateDTO struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type RecordDTO struct {
	ID         string       `json:"id"`
	UserID     int32        `json:"userId"`
	Date       web.DateOnly `json:"date"`
	CheckIn    time.Time    `json:"checkIn"`
	CheckOut   *time.Time   `json:"checkOut"`
	Status     string       `json:"status"`
	TotalHours *float64     `json:"totalHours"`
	Notes      string       `json:"notes"`
}

func toRecordDTO(r *model.AttendanceRecord) RecordDTO {
	return RecordDTO{
		ID:         r.ID,
		UserID:     r.UserID,
		Date:       web.DateOnly{Time: r.Date},
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Status:     r.Status,
		TotalHours: r.TotalHours,
		Notes:      r.Notes,
	}
}
