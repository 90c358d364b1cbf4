// Package family contains family-related use cases.
package family

import (
	"testing"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestGuard(t *testing.T) {
	ownerID := uuid.New()
	fam := entity.NewFamily("Home", "EUR", ownerID)
	families := []*entity.Family{fam}

	tests := []struct {
		name     string
		loading  bool
		families []*entity.Family
		activeID uuid.UUID
		want     GuardState
	}{
		{
			name:     "loading takes precedence over everything",
			loading:  true,
			families: families,
			activeID: fam.ID,
			want:     GuardStateLoading,
		},
		{
			name:    "no families",
			want:    GuardStateNoFamily,
		},
		{
			name:     "families but no selection",
			families: families,
			want:     GuardStateNoSelection,
		},
		{
			name:     "ready",
			families: families,
			activeID: fam.ID,
			want:     GuardStateReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Guard(tt.loading, tt.families, tt.activeID)
			if got != tt.want {
				t.Errorf("Guard() = %q, want %q", got, tt.want)
			}
		})
	}
}
