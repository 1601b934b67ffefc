package core

import (
	"errors"
	"fmt"
	"time"

	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenRecord returns the user's open session for the given day, or nil.
func OpenRecord(db *gorm.DB, userID int32, date string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	result := db.Where("user_id = ? AND date = ? AND check_out IS NULL", userID, date).
		First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

// CheckIn opens a session for the user at now. The pre-check keeps the
// common path cheap; the unique index on (user_id, date, open_token)
// closes the race between two concurrent check-ins, surfacing as a
// duplicated-key error mapped to ErrAlreadyCheckedIn.
func CheckIn(db *gorm.DB, userID int32, notes string, now time.Time) (*model.AttendanceRecord, error) {
	date := DayOf(now)

	open, err := OpenRecord(db, userID, date)
	if err != nil {
		return nil, err
	}
	if err := EnsureCanCheckIn(open); err != nil {
		return nil, err
	}

	record := model.AttendanceRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      utils.MustParseDate(date),
		CheckIn:   now,
		Status:    model.StatusPresent,
		Notes:     notes,
		OpenToken: utils.Ptr("1"),
	}

	if err := db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return &record, nil
}

// CheckOut closes the user's open session for today and derives
// TotalHours at the point of commit.
func CheckOut(db *gorm.DB, userID int32, notes string, now time.Time) (*model.AttendanceRecord, error) {
	date := DayOf(now)

	record, err := OpenRecord(db, userID, date)
	if err != nil {
		return nil, err
	}
	if err := EnsureCanCheckOut(record); err != nil {
		return nil, err
	}

	record.CheckOut = &now
	record.TotalHours = utils.Ptr(TotalHours(record.CheckIn, now))
	record.OpenToken = nil
	if notes != "" {
		record.Notes = notes
	}

	updates := map[string]interface{}{
		"check_out":   record.CheckOut,
		"total_hours": record.TotalHours,
		"open_token":  nil,
		"notes":       record.Notes,
	}
	if err := db.Model(&model.AttendanceRecord{}).Where("id = ?", record.ID).
		Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return record, nil
}

// TodaysRecord returns the user's record for the given day, open or
// closed, or nil when the user has not checked in.
func TodaysRecord(db *gorm.DB, userID int32, date string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	result := db.Where("user_id = ? AND date = ?", userID, date).
		Order("check_in DESC").
		First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

// ListForUser returns the user's own records newest first, optionally
// bounded to an inclusive date range.
func ListForUser(db *gorm.DB, userID int32, startDate, endDate *string) ([]model.AttendanceRecord, error) {
	query := db.Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	var records []model.AttendanceRecord
	if err := query.Order("date DESC, check_in DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListAll returns all records newest first with the unpaged total.
func ListAll(db *gorm.DB, startDate, endDate *string, limit, offset int) ([]model.AttendanceRecord, int64, error) {
	query := db.Model(&model.AttendanceRecord{})
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.AttendanceRecord
	if err := query.Order("date DESC, check_in DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

type RecordPatch struct {
	Status *string
	Notes  *string
}

// UpdateRecord applies an administrative patch. Only status and notes
// are patchable, so TotalHours is never touched here.
func UpdateRecord(db *gorm.DB, id string, patch RecordPatch) (*model.AttendanceRecord, error) {
	if patch.Status != nil && !ValidStatus(*patch.Status) {
		return nil, ErrInvalidStatus
	}

	updates := map[string]interface{}{}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	var record model.AttendanceRecord
	result := db.Where("id = ?", id).First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	if len(updates) == 0 {
		return &record, nil
	}

	if err := db.Model(&record).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}

	return &record, nil
}
