// Package family contains family-related use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListFamiliesInput represents the input for listing accessible families.
type ListFamiliesInput struct {
	UserID uuid.UUID
}

// ListFamiliesOutput represents the output of listing accessible families.
type ListFamiliesOutput struct {
	Families    []*entity.Family
	Memberships []*entity.MembershipWithFamily
}

// ListFamiliesUseCase lists every family the user may act within: owned
// families followed by member-only families.
type ListFamiliesUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewListFamiliesUseCase creates a new ListFamiliesUseCase instance.
func NewListFamiliesUseCase(familyRepo adapter.FamilyRepository) *ListFamiliesUseCase {
	return &ListFamiliesUseCase{
		familyRepo: familyRepo,
	}
}

// Execute performs the family listing. Both queries run concurrently and the
// union is derived only after both settle.
func (uc *ListFamiliesUseCase) Execute(ctx context.Context, input ListFamiliesInput) (*ListFamiliesOutput, error) {
	var (
		owned       []*entity.Family
		memberships []*entity.MembershipWithFamily
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, err = uc.familyRepo.FindOwnedFamilies(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		memberships, err = uc.familyRepo.FindMembershipsWithFamilies(gctx, input.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list families: %w", err)
	}

	return &ListFamiliesOutput{
		Families:    entity.AccessibleFamilies(owned, memberships),
		Memberships: memberships,
	}, nil
}
