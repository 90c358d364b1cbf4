// Package valueobject defines immutable domain value types.
package valueobject

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// PeriodBounds returns the inclusive start and exclusive end of the budget
// period window containing the given instant. Weeks start on Monday; months
// and years follow the calendar.
func PeriodBounds(at time.Time, period entity.BudgetPeriod) (start, end time.Time) {
	loc := at.Location()

	switch period {
	case entity.BudgetPeriodWeekly:
		weekday := int(at.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = time.Date(at.Year(), at.Month(), at.Day()-(weekday-1), 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 7)
	case entity.BudgetPeriodYearly:
		start = time.Date(at.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	default: // monthly
		start = time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	}
	return start, end
}

// InPeriod reports whether t falls inside the period window containing at.
func InPeriod(t, at time.Time, period entity.BudgetPeriod) bool {
	start, end := PeriodBounds(at, period)
	return !t.Before(start) && t.Before(end)
}
