package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantrix/entities"
)

// monday is 2026-01-05.
var monday = time.Date(2026, time.January, 5, 10, 30, 0, 0, time.UTC)

func roadmapOf(videos ...entities.VideoModule) *entities.Roadmap {
	r := &entities.Roadmap{
		ID:    "rm_test",
		Title: "Test Roadmap",
		Branches: []entities.Branch{
			{ID: "br_1", Title: "Branch One", Videos: videos},
		},
	}
	r.RecomputeDurations()
	return r
}

func mod(id string, dur int, core bool) entities.VideoModule {
	return entities.VideoModule{ID: id, Title: "Module " + id, Duration: dur, IsCore: core}
}

func TestBuildScheduleSkipsWeekends(t *testing.T) {
	videos := make([]entities.VideoModule, 0, 20)
	for i := 0; i < 20; i++ {
		videos = append(videos, mod(string(rune('a'+i)), 3600, false))
	}
	cal := BuildSchedule(roadmapOf(videos...), 1.0, monday)

	for _, d := range SortedDates(cal) {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, day.Weekday(), "scheduled on %s", d)
		assert.NotEqual(t, time.Sunday, day.Weekday(), "scheduled on %s", d)
	}
	// One 3600s module per 1h day: Mon 5th..Fri 9th, then Mon 12th.
	dates := SortedDates(cal)
	require.True(t, len(dates) >= 6)
	assert.Equal(t, "2026-01-09", dates[4])
	assert.Equal(t, "2026-01-12", dates[5])
}

func TestBuildScheduleNeverExceedsDailyBudget(t *testing.T) {
	videos := make([]entities.VideoModule, 0, 30)
	for i := 0; i < 30; i++ {
		videos = append(videos, mod(string(rune('a'+i)), 900+i*60, i%3 == 0))
	}
	cal := BuildSchedule(roadmapOf(videos...), 1.5, monday)

	budget := int(1.5 * 3600)
	for d, day := range cal {
		used := 0
		for _, m := range day {
			used += m.Duration
		}
		assert.LessOrEqual(t, used, budget, "day %s over budget", d)
	}
}

func TestBuildScheduleCoreFirstThenShorter(t *testing.T) {
	cal := BuildSchedule(roadmapOf(
		mod("long-extra", 1200, false),
		mod("short-extra", 300, false),
		mod("long-core", 900, true),
		mod("short-core", 600, true),
	), 1.0, monday)

	day := cal["2026-01-05"]
	require.Len(t, day, 4) // 600+900+300+1200 = 3000s, inside the 3600s budget
	assert.Equal(t, "short-core", day[0].ID)
	assert.Equal(t, "long-core", day[1].ID)
	assert.Equal(t, "short-extra", day[2].ID)
	assert.Equal(t, "long-extra", day[3].ID)
	for _, m := range day {
		assert.Equal(t, "09:00", m.ScheduledTime)
		assert.Equal(t, "br_1", m.BranchID)
		assert.Equal(t, "Branch One", m.BranchTitle)
	}
}

func TestBuildScheduleOverflowEndsTheDay(t *testing.T) {
	// 2000+2000 overflows the hour even though the 1000s module would fit.
	cal := BuildSchedule(roadmapOf(
		mod("a", 2000, true),
		mod("b", 2000, true),
		mod("c", 1000, false),
	), 1.0, monday)

	day1 := cal["2026-01-05"]
	require.Len(t, day1, 1)
	assert.Equal(t, "a", day1[0].ID)

	day2 := cal["2026-01-06"]
	require.Len(t, day2, 2)
	assert.Equal(t, "b", day2[0].ID)
	assert.Equal(t, "c", day2[1].ID)
}

func TestBuildScheduleOversizedModuleStallsEverythingBehindIt(t *testing.T) {
	cal := BuildSchedule(roadmapOf(
		mod("fits", 1800, true),
		mod("giant", 7200, true), // larger than the whole daily budget
		mod("small", 600, false),
	), 1.0, monday)

	require.Len(t, cal, 1)
	day := cal["2026-01-05"]
	require.Len(t, day, 1)
	assert.Equal(t, "fits", day[0].ID)
	// "giant" never fits, and "small" is stuck behind it for the whole horizon.
	assert.Equal(t, 1800, TotalScheduled(cal))
}

func TestBuildScheduleHorizonLeavesOverflowUnscheduled(t *testing.T) {
	videos := make([]entities.VideoModule, 0, 100)
	for i := 0; i < 100; i++ {
		videos = append(videos, mod(string(rune('a'+i%26))+string(rune('0'+i/26)), 3600, false))
	}
	r := roadmapOf(videos...)
	cal := BuildSchedule(r, 1.0, monday)

	assert.LessOrEqual(t, len(cal), HorizonDays)
	assert.Less(t, TotalScheduled(cal), r.TotalDuration)
}

func TestBuildScheduleMapIsSparse(t *testing.T) {
	cal := BuildSchedule(roadmapOf(mod("only", 600, true)), 1.0, monday)
	require.Len(t, cal, 1)
	_, ok := cal["2026-01-06"]
	assert.False(t, ok)
}
