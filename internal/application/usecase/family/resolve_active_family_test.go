// Package family contains family-related use cases.
package family

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// fakeFamilyRepo implements the subset of adapter.FamilyRepository used by
// resolution.
type fakeFamilyRepo struct {
	owned       []*entity.Family
	memberships []*entity.MembershipWithFamily
	err         error
}

func (r *fakeFamilyRepo) FindOwnedFamilies(_ context.Context, _ uuid.UUID) ([]*entity.Family, error) {
	return r.owned, r.err
}

func (r *fakeFamilyRepo) FindMembershipsWithFamilies(_ context.Context, _ uuid.UUID) ([]*entity.MembershipWithFamily, error) {
	return r.memberships, r.err
}

func (r *fakeFamilyRepo) CreateFamilyWithOwner(context.Context, *entity.Family, *entity.FamilyMember) error {
	return nil
}
func (r *fakeFamilyRepo) FindFamilyByID(context.Context, uuid.UUID) (*entity.Family, error) {
	return nil, nil
}
func (r *fakeFamilyRepo) UpdateFamily(context.Context, *entity.Family) error { return nil }
func (r *fakeFamilyRepo) DeleteFamily(context.Context, uuid.UUID) error      { return nil }
func (r *fakeFamilyRepo) CreateMember(context.Context, *entity.FamilyMember) error {
	return nil
}
func (r *fakeFamilyRepo) FindMemberByID(context.Context, uuid.UUID) (*entity.FamilyMember, error) {
	return nil, nil
}
func (r *fakeFamilyRepo) FindMemberByFamilyAndUser(context.Context, uuid.UUID, uuid.UUID) (*entity.FamilyMember, error) {
	return nil, nil
}
func (r *fakeFamilyRepo) FindMembersByFamilyID(context.Context, uuid.UUID) ([]*entity.FamilyMember, error) {
	return nil, nil
}
func (r *fakeFamilyRepo) DeleteMember(context.Context, uuid.UUID) error { return nil }
func (r *fakeFamilyRepo) IsUserInFamily(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}
func (r *fakeFamilyRepo) CreateInvite(context.Context, *entity.FamilyInvite) error { return nil }
func (r *fakeFamilyRepo) FindInviteByToken(context.Context, string) (*entity.FamilyInvite, error) {
	return nil, nil
}
func (r *fakeFamilyRepo) FindPendingInviteByFamilyAndEmail(context.Context, uuid.UUID, string) (*entity.FamilyInvite, error) {
	return nil, nil
}
func (r *fakeFamilyRepo) FindPendingInvitesByFamilyID(context.Context, uuid.UUID) ([]*entity.FamilyInvite, error) {
	return nil, nil
}
func (r *fakeFamilyRepo) UpdateInvite(context.Context, *entity.FamilyInvite) error { return nil }

// fakePreferenceStore is an in-memory adapter.PreferenceStore.
type fakePreferenceStore struct {
	values map[uuid.UUID]uuid.UUID
	sets   int
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{values: make(map[uuid.UUID]uuid.UUID)}
}

func (s *fakePreferenceStore) GetActiveFamily(_ context.Context, userID uuid.UUID) (uuid.UUID, bool) {
	id, ok := s.values[userID]
	return id, ok
}

func (s *fakePreferenceStore) SetActiveFamily(_ context.Context, userID, familyID uuid.UUID) {
	s.values[userID] = familyID
	s.sets++
}

func (s *fakePreferenceStore) RemoveActiveFamily(_ context.Context, userID uuid.UUID) {
	delete(s.values, userID)
}

func makeFamily(name string, ownerID uuid.UUID) *entity.Family {
	return entity.NewFamily(name, "", ownerID)
}

func membership(userID uuid.UUID, fam *entity.Family) *entity.MembershipWithFamily {
	return &entity.MembershipWithFamily{
		Member: entity.NewFamilyMember(fam.ID, userID, entity.MemberRoleMember),
		Family: fam,
	}
}

func TestResolveActiveFamily(t *testing.T) {
	owner := uuid.New()
	famA := makeFamily("A", owner)
	famB := makeFamily("B", owner)
	accessible := []*entity.Family{famA, famB}

	tests := []struct {
		name       string
		currentID  uuid.UUID
		accessible []*entity.Family
		stored     uuid.UUID
		want       uuid.UUID
	}{
		{
			name:       "no accessible families resolves to nil",
			currentID:  famA.ID,
			accessible: nil,
			stored:     famA.ID,
			want:       uuid.Nil,
		},
		{
			name:       "valid current selection is kept",
			currentID:  famB.ID,
			accessible: accessible,
			stored:     famA.ID,
			want:       famB.ID,
		},
		{
			name:       "stored preference hydrates when no current selection",
			currentID:  uuid.Nil,
			accessible: accessible,
			stored:     famB.ID,
			want:       famB.ID,
		},
		{
			name:       "unknown selection falls back to first accessible",
			currentID:  uuid.New(), // "Z", not present
			accessible: accessible,
			stored:     uuid.Nil,
			want:       famA.ID,
		},
		{
			name:       "stale stored preference falls back to first accessible",
			currentID:  uuid.Nil,
			accessible: accessible,
			stored:     uuid.New(), // family the user left
			want:       famA.ID,
		},
		{
			name:       "nothing stored selects first accessible",
			currentID:  uuid.Nil,
			accessible: accessible,
			stored:     uuid.Nil,
			want:       famA.ID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveActiveFamily(tt.currentID, tt.accessible, tt.stored)
			if got != tt.want {
				t.Errorf("ResolveActiveFamily() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveContext_UnionPrecedence(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()

	famA := makeFamily("A", userID)
	famB := makeFamily("B", userID)
	famC := makeFamily("C", other)

	repo := &fakeFamilyRepo{
		owned: []*entity.Family{famA, famB},
		memberships: []*entity.MembershipWithFamily{
			membership(userID, famB),
			membership(userID, famC),
		},
	}
	uc := NewResolveContextUseCase(repo, newFakePreferenceStore())

	output, err := uc.Execute(context.Background(), ResolveContextInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := output.Context.Families
	want := []uuid.UUID{famA.ID, famB.ID, famC.ID}
	if len(got) != len(want) {
		t.Fatalf("expected %d families, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("families[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestResolveContext_StalePreferenceOverriddenWithoutMutation(t *testing.T) {
	userID := uuid.New()
	famA := makeFamily("A", userID)
	famB := makeFamily("B", userID)

	staleID := uuid.New()
	prefs := newFakePreferenceStore()
	prefs.values[userID] = staleID

	repo := &fakeFamilyRepo{owned: []*entity.Family{famA, famB}}
	uc := NewResolveContextUseCase(repo, prefs)

	output, err := uc.Execute(context.Background(), ResolveContextInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Context.ActiveFamilyID != famA.ID {
		t.Errorf("active family = %s, want first accessible %s", output.Context.ActiveFamilyID, famA.ID)
	}
	// The stale entry stays until the next explicit selection.
	if stored := prefs.values[userID]; stored != staleID {
		t.Errorf("stored preference mutated to %s, want untouched %s", stored, staleID)
	}
}

func TestResolveContext_OwnershipFlag(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()
	famOwned := makeFamily("Mine", userID)
	famMember := makeFamily("Theirs", other)

	repo := &fakeFamilyRepo{
		owned:       []*entity.Family{famOwned},
		memberships: []*entity.MembershipWithFamily{membership(userID, famMember)},
	}
	prefs := newFakePreferenceStore()
	uc := NewResolveContextUseCase(repo, prefs)

	t.Run("owner of active family", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ResolveContextInput{UserID: userID, CurrentFamilyID: famOwned.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.Context.IsOwnerOfActiveFamily {
			t.Error("expected IsOwnerOfActiveFamily to be true")
		}
	})

	t.Run("member of active family", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ResolveContextInput{UserID: userID, CurrentFamilyID: famMember.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Context.IsOwnerOfActiveFamily {
			t.Error("expected IsOwnerOfActiveFamily to be false")
		}
	})

	t.Run("no accessible families", func(t *testing.T) {
		empty := NewResolveContextUseCase(&fakeFamilyRepo{}, prefs)
		output, err := empty.Execute(context.Background(), ResolveContextInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Context.ActiveFamilyID != uuid.Nil {
			t.Errorf("active family = %s, want nil", output.Context.ActiveFamilyID)
		}
		if output.Context.IsOwnerOfActiveFamily {
			t.Error("expected IsOwnerOfActiveFamily to be false with no active family")
		}
	})
}

func TestSelectFamily_LogoutClearsLoginRestores(t *testing.T) {
	userID := uuid.New()
	famA := makeFamily("A", userID)
	famB := makeFamily("B", userID)

	repo := &fakeFamilyRepo{owned: []*entity.Family{famA, famB}}
	prefs := newFakePreferenceStore()
	resolve := NewResolveContextUseCase(repo, prefs)
	selectUC := NewSelectFamilyUseCase(resolve, prefs)

	// Explicit selection of B persists it.
	output, err := selectUC.Execute(context.Background(), SelectFamilyInput{UserID: userID, FamilyID: famB.ID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Context.ActiveFamilyID != famB.ID {
		t.Fatalf("active family = %s, want %s", output.Context.ActiveFamilyID, famB.ID)
	}

	// A logged-out session has no user and therefore no resolved context;
	// logging back in re-resolves from the stored preference.
	restored, err := resolve.Execute(context.Background(), ResolveContextInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if restored.Context.ActiveFamilyID != famB.ID {
		t.Errorf("restored active family = %s, want persisted %s", restored.Context.ActiveFamilyID, famB.ID)
	}
}

func TestSelectFamily_NilSelectionRemovesPreference(t *testing.T) {
	userID := uuid.New()
	famA := makeFamily("A", userID)

	repo := &fakeFamilyRepo{owned: []*entity.Family{famA}}
	prefs := newFakePreferenceStore()
	prefs.values[userID] = famA.ID
	resolve := NewResolveContextUseCase(repo, prefs)
	selectUC := NewSelectFamilyUseCase(resolve, prefs)

	if _, err := selectUC.Execute(context.Background(), SelectFamilyInput{UserID: userID}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, ok := prefs.values[userID]; ok {
		t.Error("expected stored preference to be removed")
	}
}

func TestSelectFamily_RejectsInaccessibleFamily(t *testing.T) {
	userID := uuid.New()
	famA := makeFamily("A", userID)

	repo := &fakeFamilyRepo{owned: []*entity.Family{famA}}
	prefs := newFakePreferenceStore()
	resolve := NewResolveContextUseCase(repo, prefs)
	selectUC := NewSelectFamilyUseCase(resolve, prefs)

	_, err := selectUC.Execute(context.Background(), SelectFamilyInput{UserID: userID, FamilyID: uuid.New()})
	if err == nil {
		t.Fatal("expected error selecting an inaccessible family")
	}
	if prefs.sets != 0 {
		t.Error("expected no preference write on rejected selection")
	}
}
