package transaction

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2026-08-15",
			want:  time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "slash separators rejected",
			input:   "15/08/2026",
			wantErr: true,
		},
		{
			name:    "datetime rejected",
			input:   "2026-08-15T10:00:00Z",
			wantErr: true,
		},
		{
			name:    "empty string rejected",
			input:   "",
			wantErr: true,
		},
		{
			name:    "impossible day rejected",
			input:   "2026-02-30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) succeeded, want error", tt.input)
				}
				var ledgerErr *domainerror.LedgerError
				if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeInvalidDate {
					t.Errorf("parseDate(%q) error = %v, want code %s", tt.input, err, domainerror.ErrCodeInvalidDate)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
