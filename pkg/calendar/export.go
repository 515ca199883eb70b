package calendar

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"mantrix/entities"
)

const exportSheet = "Study Plan"

// WriteXLSX renders a schedule as a spreadsheet, one row per scheduled
// module, days in ascending order.
func WriteXLSX(r *entities.Roadmap, cal map[string][]ScheduledModule) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []any{"Date", "Time", "Branch", "Module", "Duration (min)", "Core"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, date := range SortedDates(cal) {
		for _, m := range cal[date] {
			core := "no"
			if m.IsCore {
				core = "yes"
			}
			cells := []any{date, m.ScheduledTime, m.BranchTitle, m.Title, m.Duration / 60, core}
			if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", row), &cells); err != nil {
				return nil, err
			}
			row++
		}
	}

	// Summary footer: how much of the roadmap actually landed on the plan.
	footer := []any{"", "", "", "Scheduled / total (sec)", TotalScheduled(cal), r.TotalDuration}
	if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", row+1), &footer); err != nil {
		return nil, err
	}
	return f, nil
}
