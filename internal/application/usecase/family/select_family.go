// Package family contains family-related use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// SelectFamilyInput represents the input for an explicit family selection.
type SelectFamilyInput struct {
	UserID uuid.UUID
	// FamilyID is the chosen family. uuid.Nil clears the selection and
	// removes the stored preference.
	FamilyID uuid.UUID
}

// SelectFamilyOutput represents the output of an explicit family selection.
type SelectFamilyOutput struct {
	Context *ResolvedContext
}

// SelectFamilyUseCase handles an explicit family selection: it validates the
// choice against the user's accessible families, persists it, and returns
// the re-resolved context.
type SelectFamilyUseCase struct {
	resolveUseCase *ResolveContextUseCase
	preferences    adapter.PreferenceStore
}

// NewSelectFamilyUseCase creates a new SelectFamilyUseCase instance.
func NewSelectFamilyUseCase(resolveUseCase *ResolveContextUseCase, preferences adapter.PreferenceStore) *SelectFamilyUseCase {
	return &SelectFamilyUseCase{
		resolveUseCase: resolveUseCase,
		preferences:    preferences,
	}
}

// Execute performs the family selection.
func (uc *SelectFamilyUseCase) Execute(ctx context.Context, input SelectFamilyInput) (*SelectFamilyOutput, error) {
	if input.FamilyID == uuid.Nil {
		uc.preferences.RemoveActiveFamily(ctx, input.UserID)

		output, err := uc.resolveUseCase.Execute(ctx, ResolveContextInput{UserID: input.UserID})
		if err != nil {
			return nil, err
		}
		return &SelectFamilyOutput{Context: output.Context}, nil
	}

	resolved, err := uc.resolveUseCase.Execute(ctx, ResolveContextInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	var accessible bool
	for _, f := range resolved.Context.Families {
		if f.ID == input.FamilyID {
			accessible = true
			break
		}
	}
	if !accessible {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeNotFamilyMember,
			"family is not accessible to this user",
			domainerror.ErrNotFamilyMember,
		)
	}

	uc.preferences.SetActiveFamily(ctx, input.UserID, input.FamilyID)

	output, err := uc.resolveUseCase.Execute(ctx, ResolveContextInput{UserID: input.UserID, CurrentFamilyID: input.FamilyID})
	if err != nil {
		return nil, fmt.Errorf("failed to re-resolve family context: %w", err)
	}

	return &SelectFamilyOutput{Context: output.Context}, nil
}
