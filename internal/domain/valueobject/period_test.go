// Package valueobject defines immutable domain value types.
package valueobject

import (
	"testing"
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestPeriodBounds(t *testing.T) {
	at := time.Date(2026, time.August, 31, 15, 4, 5, 0, time.UTC) // a Monday

	tests := []struct {
		name      string
		at        time.Time
		period    entity.BudgetPeriod
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "monthly window",
			at:        at,
			period:    entity.BudgetPeriodMonthly,
			wantStart: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly window starts on monday",
			at:        at,
			period:    entity.BudgetPeriodWeekly,
			wantStart: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly window from a sunday",
			at:        time.Date(2026, time.September, 6, 8, 0, 0, 0, time.UTC),
			period:    entity.BudgetPeriodWeekly,
			wantStart: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "yearly window",
			at:        at,
			period:    entity.BudgetPeriodYearly,
			wantStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly window across a month boundary",
			at:        time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), // a Wednesday
			period:    entity.BudgetPeriodWeekly,
			wantStart: time.Date(2026, time.June, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodBounds(tt.at, tt.period)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %s, want %s", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %s, want %s", end, tt.wantEnd)
			}
		})
	}
}

func TestInPeriod(t *testing.T) {
	at := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	if !InPeriod(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), at, entity.BudgetPeriodMonthly) {
		t.Error("expected window start to be inside the period")
	}
	if InPeriod(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), at, entity.BudgetPeriodMonthly) {
		t.Error("expected window end to be outside the period")
	}
	if InPeriod(time.Date(2026, time.July, 31, 23, 59, 59, 0, time.UTC), at, entity.BudgetPeriodMonthly) {
		t.Error("expected prior month to be outside the period")
	}
}
