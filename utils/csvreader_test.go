package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `id,user,timestamp,location
1,30172,2026-03-02T07:58:12Z,gate-a
2,30173,2026-03-02T08:03:44Z,gate-b`

	reader := strings.NewReader(csvData)

	got, err := ParseCSV(reader)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"id", "user", "timestamp", "location"},
		{"1", "30172", "2026-03-02T07:58:12Z", "gate-a"},
		{"2", "30173", "2026-03-02T08:03:44Z", "gate-b"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}
