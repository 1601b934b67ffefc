package helper

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Punch is one badge-reader event from a CSV drop.
// Columns: id, user, timestamp (RFC3339), location.
type Punch struct {
	ID        int
	UserID    int32
	Timestamp time.Time
	Date      string
	Location  string
}

// DaySession is a user's punches collapsed to one attendance day:
// earliest punch is the check-in, latest is the check-out.
type DaySession struct {
	UserID   int32
	Date     string
	CheckIn  time.Time
	CheckOut time.Time
	Punches  []Punch
}

func ParsePunchCSV(r io.Reader, offsetSeconds int) ([]Punch, error) {
	rows, err := utils.ParseCSV(r)
	if err != nil {
		return nil, err
	}

	loc := time.FixedZone("OFFSET", offsetSeconds)

	var punches []Punch
	for i, row := range rows {
		if i == 0 {
			continue
		}

		if len(row) < 4 {
			return nil, fmt.Errorf("row %d: expected 4 columns, got %d", i, len(row))
		}

		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid ID: %w", i, err)
		}

		userID, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid user: %w", i, err)
		}

		parsed, err := utils.ParseISOTime(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid timestamp: %w", i, err)
		}
		timestamp := parsed.In(loc)

		punch := Punch{
			ID:        id,
			UserID:    int32(userID),
			Timestamp: timestamp,
			Date:      timestamp.Format(attendance.DateLayout),
			Location:  row[3],
		}

		punches = append(punches, punch)
	}

	return punches, nil
}

type dayKey struct {
	UserID int32
	Date   string
}

func GroupPunches(punches []Punch) []DaySession {
	grouped := utils.GroupBy(punches, func(p Punch) dayKey {
		return dayKey{UserID: p.UserID, Date: p.Date}
	})

	sessions := make([]DaySession, 0, len(grouped))
	for key, group := range grouped {
		session := DaySession{
			UserID:   key.UserID,
			Date:     key.Date,
			CheckIn:  group[0].Timestamp,
			CheckOut: group[0].Timestamp,
			Punches:  group,
		}
		for _, p := range group[1:] {
			if p.Timestamp.Before(session.CheckIn) {
				session.CheckIn = p.Timestamp
			}
			if p.Timestamp.After(session.CheckOut) {
				session.CheckOut = p.Timestamp
			}
		}
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].UserID < sessions[j].UserID
	})

	return sessions
}

type ImportSummary struct {
	Created int
	Skipped int
}

// Import writes one closed attendance record per session, skipping
// user-days that already have a record so re-delivered files are safe
// to process twice.
func Import(db *gorm.DB, sessions []DaySession) (ImportSummary, error) {
	var summary ImportSummary

	for _, session := range sessions {
		existing, err := attendance.TodaysRecord(db, session.UserID, session.Date)
		if err != nil {
			return summary, err
		}
		if existing != nil {
			summary.Skipped++
			continue
		}

		checkOut := session.CheckOut
		record := model.AttendanceRecord{
			ID:         uuid.NewString(),
			UserID:     session.UserID,
			Date:       utils.MustParseDate(session.Date),
			CheckIn:    session.CheckIn,
			CheckOut:   &checkOut,
			Status:     model.StatusPresent,
			TotalHours: utils.Ptr(attendance.TotalHours(session.CheckIn, session.CheckOut)),
			Notes:      fmt.Sprintf("imported from badge reader (%d punches)", len(session.Punches)),
		}
		if err := db.Create(&record).Error; err != nil {
			return summary, fmt.Errorf("failed to import record for user %d on %s: %w",
				session.UserID, session.Date, err)
		}
		summary.Created++
	}

	return summary, nil
}
