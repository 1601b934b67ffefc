package attendance

import (
	"encoding/json"
	"testing"
	"time"

	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/utils"
	"github.com/stretchr/testify/assert"
)

// The date field must serialize as a plain yyyy-MM-dd string no matter
// whether the record came from an in-memory create or a database read.
func TestRecordDTODateFormat(t *testing.T) {
	record := model.AttendanceRecord{
		ID:      "rec-1",
		UserID:  42,
		Date:    utils.MustParseDate("2026-03-02"),
		CheckIn: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Status:  model.StatusPresent,
	}

	body, err := json.Marshal(toRecordDTO(&record))
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"date":"2026-03-02"`)
	assert.NotContains(t, string(body), `"date":"2026-03-02T`)
}
