package services

import (
	"testing"
	"time"

	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreakContinues(t *testing.T) {
	now := ts("2026-09-01T10:00:00Z")

	tests := []struct {
		name string
		last *time.Time
		want bool
	}{
		{name: "no previous completion", last: nil, want: false},
		{name: "completed yesterday", last: ptr(ts("2026-08-31T23:59:00Z")), want: true},
		{name: "completed yesterday early morning", last: ptr(ts("2026-08-31T00:01:00Z")), want: true},
		{name: "completed today", last: ptr(ts("2026-09-01T01:00:00Z")), want: false},
		{name: "two day gap", last: ptr(ts("2026-08-30T12:00:00Z")), want: false},
		{name: "week old", last: ptr(ts("2026-08-25T12:00:00Z")), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, streakContinues(tt.last, now))
		})
	}
}

func TestStreakContinuesUsesUTCCalendarDays(t *testing.T) {
	// 2026-08-31 23:30 UTC expressed in UTC+2 is already 2026-09-01 local,
	// but only the UTC date matters.
	loc := time.FixedZone("UTC+2", 2*60*60)
	last := time.Date(2026, 9, 1, 1, 30, 0, 0, loc) // 2026-08-31T23:30Z
	now := ts("2026-09-01T10:00:00Z")

	assert.True(t, streakContinues(&last, now))
}

func TestCompletionReward(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		streak int
		want   int
	}{
		{name: "streak 1 pays base only", base: 10, streak: 1, want: 10},
		{name: "streak 4 below first tier", base: 10, streak: 4, want: 10},
		{name: "streak 5 first tier", base: 10, streak: 5, want: 15},
		{name: "streak 9 still first tier", base: 10, streak: 9, want: 15},
		{name: "streak 10 two tiers", base: 10, streak: 10, want: 20},
		{name: "streak 29 still two tiers", base: 10, streak: 29, want: 20},
		{name: "streak 30 all tiers", base: 10, streak: 30, want: 30},
		{name: "streak 100 caps at all tiers", base: 10, streak: 100, want: 30},
		{name: "larger base", base: 25, streak: 30, want: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, completionReward(tt.base, tt.streak))
		})
	}
}

func TestCompletedOn(t *testing.T) {
	today := utcDate(ts("2026-09-01T15:00:00Z"))

	habit := &models.Habit{CompletedToday: true, LastCompletedAt: ptr(ts("2026-09-01T08:00:00Z"))}
	assert.True(t, completedOn(habit, today))

	// Stale flag from a missed rollover job does not block today.
	stale := &models.Habit{CompletedToday: true, LastCompletedAt: ptr(ts("2026-08-31T08:00:00Z"))}
	assert.False(t, completedOn(stale, today))

	fresh := &models.Habit{CompletedToday: false}
	assert.False(t, completedOn(fresh, today))
}

func TestUtcDate(t *testing.T) {
	d := utcDate(ts("2026-09-01T23:59:59Z"))
	assert.Equal(t, ts("2026-09-01T00:00:00Z"), d)

	loc := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2026, 8, 31, 22, 0, 0, 0, loc) // 2026-09-01T03:00Z
	assert.Equal(t, ts("2026-09-01T00:00:00Z"), utcDate(late))
}

func TestHabitUpdatesAllowList(t *testing.T) {
	title := "Morning run"
	color := "#FF0000"
	reward := 20

	updates := habitUpdates(dto.UpdateHabitRequest{
		Title:      &title,
		Color:      &color,
		CoinReward: &reward,
	})

	require.Len(t, updates, 3)
	assert.Equal(t, "Morning run", updates["title"])
	assert.Equal(t, "#FF0000", updates["color"])
	assert.Equal(t, 20, updates["coin_reward"])
}

func TestHabitUpdatesSkipsAbsentAndInvalidFields(t *testing.T) {
	empty := ""
	zero := 0

	updates := habitUpdates(dto.UpdateHabitRequest{
		Title:      &empty, // blank title ignored
		CoinReward: &zero,  // non-positive reward ignored
	})
	assert.Empty(t, updates)

	assert.Empty(t, habitUpdates(dto.UpdateHabitRequest{}))
}

func TestHabitUpdatesNeverTouchesCounters(t *testing.T) {
	title := "x"
	updates := habitUpdates(dto.UpdateHabitRequest{Title: &title})

	for _, forbidden := range []string{"streak", "total_completions", "completed_today", "last_completed_at"} {
		_, ok := updates[forbidden]
		assert.False(t, ok, "field %s must not be client-writable", forbidden)
	}
}

func ptr[T any](v T) *T {
	return &v
}
