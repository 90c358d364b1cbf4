// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestAccessibleFamilies(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()

	famA := NewFamily("A", "", userID)
	famB := NewFamily("B", "", userID)
	famC := NewFamily("C", "", other)

	asMember := func(fam *Family) *MembershipWithFamily {
		return &MembershipWithFamily{
			Member: NewFamilyMember(fam.ID, userID, MemberRoleMember),
			Family: fam,
		}
	}

	tests := []struct {
		name        string
		owned       []*Family
		memberships []*MembershipWithFamily
		want        []*Family
	}{
		{
			name: "empty inputs",
			want: []*Family{},
		},
		{
			name:        "overlap attributed to ownership once",
			owned:       []*Family{famA, famB},
			memberships: []*MembershipWithFamily{asMember(famB), asMember(famC)},
			want:        []*Family{famA, famB, famC},
		},
		{
			name:        "member-only families follow owned",
			owned:       []*Family{famA},
			memberships: []*MembershipWithFamily{asMember(famC)},
			want:        []*Family{famA, famC},
		},
		{
			name:        "duplicate memberships collapse",
			memberships: []*MembershipWithFamily{asMember(famC), asMember(famC)},
			want:        []*Family{famC},
		},
		{
			name:        "membership without family payload is skipped",
			owned:       []*Family{famA},
			memberships: []*MembershipWithFamily{{Member: NewFamilyMember(uuid.New(), userID, MemberRoleMember)}},
			want:        []*Family{famA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccessibleFamilies(tt.owned, tt.memberships)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d families, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i].ID != tt.want[i].ID {
					t.Errorf("families[%d] = %s, want %s", i, got[i].Name, tt.want[i].Name)
				}
			}
		})
	}
}
