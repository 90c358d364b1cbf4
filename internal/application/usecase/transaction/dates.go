// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDate,
			"date must be formatted as YYYY-MM-DD",
			domainerror.ErrInvalidDate,
		)
	}
	return t.UTC(), nil
}
