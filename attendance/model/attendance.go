package model

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
	StatusOnLeave = "on-leave"
)

// AttendanceRecord is one user-day of attendance. A record with CheckOut
// nil is an open session; OpenToken mirrors that state so the composite
// unique index (user_id, date, open_token) rejects a second open record
// for the same user and day. MySQL ignores NULLs in unique indexes, so
// closed records never collide.
type AttendanceRecord struct {
	ID         string     `gorm:"primaryKey;size:36;column:id" json:"id"`
	UserID     int32      `gorm:"column:user_id;not null;uniqueIndex:idx_user_date_open,priority:1" json:"userId"`
	Date       time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:idx_user_date_open,priority:2" json:"date"`
	CheckIn    time.Time  `gorm:"column:check_in;not null" json:"checkIn"`
	CheckOut   *time.Time `gorm:"column:check_out" json:"checkOut"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:present" json:"status"`
	TotalHours *float64   `gorm:"column:total_hours;type:decimal(10,2)" json:"totalHours"`
	Notes      string     `gorm:"column:notes;type:text" json:"notes"`

	OpenToken *string `gorm:"column:open_token;size:4;uniqueIndex:idx_user_date_open,priority:3" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (r *AttendanceRecord) Open() bool {
	return r.CheckOut == nil
}
