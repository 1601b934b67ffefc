package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePunchCSV(t *testing.T) {
	csvData := `id,user,timestamp,location
1,101,2026-03-02T07:58:12Z,gate-a
2,101,2026-03-02T17:02:40Z,gate-a
3,202,2026-03-02T08:30:00Z,gate-b`

	punches, err := ParsePunchCSV(strings.NewReader(csvData), 0)
	assert.NoError(t, err)
	assert.Len(t, punches, 3)

	assert.Equal(t, int32(101), punches[0].UserID)
	assert.Equal(t, "2026-03-02", punches[0].Date)
	assert.Equal(t, "gate-a", punches[0].Location)
}

func TestParsePunchCSVOffsetShiftsDate(t *testing.T) {
	// 23:30 UTC is already the next day at UTC+10
	csvData := `id,user,timestamp,location
1,101,2026-03-02T23:30:00Z,gate-a`

	punches, err := ParsePunchCSV(strings.NewReader(csvData), 10*3600)
	assert.NoError(t, err)
	assert.Len(t, punches, 1)
	assert.Equal(t, "2026-03-03", punches[0].Date)
}

func TestParsePunchCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "too few columns",
			data: "id,user,timestamp,location\n1,101,2026-03-02T07:58:12Z",
		},
		{
			name: "bad id",
			data: "id,user,timestamp,location\nx,101,2026-03-02T07:58:12Z,gate-a",
		},
		{
			name: "bad user",
			data: "id,user,timestamp,location\n1,alice,2026-03-02T07:58:12Z,gate-a",
		},
		{
			name: "bad timestamp",
			data: "id,user,timestamp,location\n1,101,yesterday,gate-a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePunchCSV(strings.NewReader(tt.data), 0)
			assert.Error(t, err)
		})
	}
}

func TestGroupPunches(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	}

	punches := []Punch{
		{ID: 1, UserID: 101, Timestamp: day(12, 15), Date: "2026-03-02"},
		{ID: 2, UserID: 101, Timestamp: day(7, 58), Date: "2026-03-02"},
		{ID: 3, UserID: 101, Timestamp: day(17, 2), Date: "2026-03-02"},
		{ID: 4, UserID: 202, Timestamp: day(9, 0), Date: "2026-03-02"},
	}

	sessions := GroupPunches(punches)
	assert.Len(t, sessions, 2)

	first := sessions[0]
	assert.Equal(t, int32(101), first.UserID)
	assert.Equal(t, day(7, 58), first.CheckIn)
	assert.Equal(t, day(17, 2), first.CheckOut)
	assert.Len(t, first.Punches, 3)

	second := sessions[1]
	assert.Equal(t, int32(202), second.UserID)
	assert.Equal(t, second.CheckIn, second.CheckOut)
}
