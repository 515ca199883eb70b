// Package calendar turns a roadmap into a day-by-day study plan bounded by
// a daily time budget and a 90-day horizon.
package calendar

import (
	"sort"
	"time"

	"mantrix/entities"
)

const (
	// HorizonDays caps the scheduling window. Content that does not fit
	// within it is simply left unscheduled.
	HorizonDays = 90

	// defaultStartTime is a display placeholder; the scheduler does not
	// model sub-day ordering.
	defaultStartTime = "09:00"
)

type ScheduledModule struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Duration      int    `json:"duration"`
	IsCore        bool   `json:"isCore"`
	BranchID      string `json:"branch_id"`
	BranchTitle   string `json:"branch_title"`
	ScheduledTime string `json:"scheduled_time"`
}

// BuildSchedule distributes the roadmap's modules across study days starting
// at start. Weekends are skipped but still consume horizon days. Candidates
// are ordered once, core modules first and shorter first within each group,
// then packed greedily: the first module that would overflow the day ends
// that day's packing and is retried as the head candidate on the next study
// day. A module longer than the whole daily budget therefore blocks
// everything behind it until the horizon expires.
func BuildSchedule(r *entities.Roadmap, dailyStudyHours float64, start time.Time) map[string][]ScheduledModule {
	budget := int(dailyStudyHours * 3600)

	candidates := make([]ScheduledModule, 0)
	for _, b := range r.Branches {
		for _, v := range b.Videos {
			candidates = append(candidates, ScheduledModule{
				ID:            v.ID,
				Title:         v.Title,
				Duration:      v.Duration,
				IsCore:        v.IsCore,
				BranchID:      b.ID,
				BranchTitle:   b.Title,
				ScheduledTime: defaultStartTime,
			})
		}
	}
	// Stable sort keeps roadmap order for equal-duration ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].IsCore != candidates[j].IsCore {
			return candidates[i].IsCore
		}
		return candidates[i].Duration < candidates[j].Duration
	})

	cal := make(map[string][]ScheduledModule)
	base := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	idx := 0
	for offset := 0; offset < HorizonDays && idx < len(candidates); offset++ {
		day := base.AddDate(0, 0, offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		var daily []ScheduledModule
		used := 0
		for idx < len(candidates) && used < budget {
			next := candidates[idx]
			if used+next.Duration > budget {
				// No look-ahead: this day ends even if a later, smaller
				// module would still fit.
				break
			}
			daily = append(daily, next)
			used += next.Duration
			idx++
		}

		if len(daily) > 0 {
			cal[day.Format("2006-01-02")] = daily
		}
	}
	return cal
}

// TotalScheduled sums the duration of every module placed on the calendar.
func TotalScheduled(cal map[string][]ScheduledModule) int {
	total := 0
	for _, day := range cal {
		for _, m := range day {
			total += m.Duration
		}
	}
	return total
}

// SortedDates returns the calendar's dates in ascending order. The map is
// sparse; days with nothing scheduled have no key.
func SortedDates(cal map[string][]ScheduledModule) []string {
	dates := make([]string, 0, len(cal))
	for d := range cal {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
