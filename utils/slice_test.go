package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	none := Filter([]int{1, 3}, func(n int) bool { return n > 10 })
	assert.Empty(t, none)
}

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestFind(t *testing.T) {
	items := []string{"annual", "sick", "unpaid"}

	found := Find(items, func(s string) bool { return s == "sick" })
	assert.NotNil(t, found)
	assert.Equal(t, "sick", *found)

	missing := Find(items, func(s string) bool { return s == "vacation" })
	assert.Nil(t, missing)
}

func TestGroupBy(t *testing.T) {
	type record struct {
		UserID int32
		Date   string
	}
	records := []record{
		{UserID: 101, Date: "2026-03-02"},
		{UserID: 101, Date: "2026-03-03"},
		{UserID: 202, Date: "2026-03-02"},
	}

	byUser := GroupBy(records, func(r record) int32 { return r.UserID })
	assert.Len(t, byUser, 2)
	assert.Len(t, byUser[101], 2)
	assert.Len(t, byUser[202], 1)
}

func TestPtr(t *testing.T) {
	p := Ptr(8.5)
	assert.Equal(t, 8.5, *p)
}
