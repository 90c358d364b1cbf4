// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/usecase/family"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateFamilyRequest represents the request body for family creation.
type CreateFamilyRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Currency string `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// UpdateFamilyRequest represents the request body for family update.
type UpdateFamilyRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Currency *string `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// InviteMemberRequest represents the request body for inviting a member.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SelectFamilyRequest represents the request body for selecting the active
// family. A null family_id clears the selection.
type SelectFamilyRequest struct {
	FamilyID *string `json:"family_id"`
}

// FamilyResponse represents a single family in API responses.
type FamilyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency,omitempty"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FamilyListResponse represents the response for listing families.
type FamilyListResponse struct {
	Families []FamilyResponse `json:"families"`
}

// FamilyDetailResponse represents detailed family information.
type FamilyDetailResponse struct {
	Family         FamilyResponse         `json:"family"`
	Members        []FamilyMemberResponse `json:"members"`
	PendingInvites []FamilyInviteResponse `json:"pending_invites,omitempty"`
	MemberCount    int                    `json:"member_count"`
	Role           string                 `json:"role"`
}

// FamilyMemberResponse represents a family member in API responses.
type FamilyMemberResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// FamilyInviteResponse represents a family invitation in API responses.
type FamilyInviteResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AcceptInviteResponse represents the response for accepting an invitation.
type AcceptInviteResponse struct {
	FamilyID   string `json:"family_id"`
	FamilyName string `json:"family_name"`
}

// FamilyContextResponse represents the resolved family context.
type FamilyContextResponse struct {
	State          string           `json:"state"`
	ActiveFamilyID *string          `json:"active_family_id"`
	ActiveFamily   *FamilyResponse  `json:"active_family,omitempty"`
	IsOwner        bool             `json:"is_owner"`
	Families       []FamilyResponse `json:"families"`
}

// ToFamilyResponse converts a domain Family entity to a FamilyResponse DTO.
func ToFamilyResponse(f *entity.Family) FamilyResponse {
	return FamilyResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		Currency:  f.Currency,
		OwnerID:   f.OwnerID.String(),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// ToFamilyListResponse converts a list of families to FamilyListResponse.
func ToFamilyListResponse(families []*entity.Family) FamilyListResponse {
	items := make([]FamilyResponse, len(families))
	for i, f := range families {
		items[i] = ToFamilyResponse(f)
	}
	return FamilyListResponse{
		Families: items,
	}
}

// ToFamilyDetailResponse converts family data to a detailed response.
func ToFamilyDetailResponse(fwm *entity.FamilyWithMembers) FamilyDetailResponse {
	response := FamilyDetailResponse{
		Family:      ToFamilyResponse(fwm.Family),
		Members:     make([]FamilyMemberResponse, len(fwm.Members)),
		MemberCount: fwm.MemberCount,
		Role:        string(fwm.UserRole),
	}

	for i, m := range fwm.Members {
		response.Members[i] = ToFamilyMemberResponse(m)
	}

	if len(fwm.PendingInvites) > 0 {
		response.PendingInvites = make([]FamilyInviteResponse, len(fwm.PendingInvites))
		for i, inv := range fwm.PendingInvites {
			response.PendingInvites[i] = ToFamilyInviteResponse(inv)
		}
	}

	return response
}

// ToFamilyMemberResponse converts a domain FamilyMember entity to a response DTO.
func ToFamilyMemberResponse(member *entity.FamilyMember) FamilyMemberResponse {
	return FamilyMemberResponse{
		ID:       member.ID.String(),
		UserID:   member.UserID.String(),
		Name:     member.UserName,
		Email:    member.UserEmail,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
}

// ToFamilyInviteResponse converts a domain FamilyInvite entity to a response DTO.
func ToFamilyInviteResponse(invite *entity.FamilyInvite) FamilyInviteResponse {
	return FamilyInviteResponse{
		ID:        invite.ID.String(),
		Email:     invite.Email,
		Token:     invite.Token,
		Status:    string(invite.Status),
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	}
}

// ToFamilyContextResponse converts a resolved context to a response DTO.
func ToFamilyContextResponse(rc *family.ResolvedContext, state family.GuardState) FamilyContextResponse {
	response := FamilyContextResponse{
		State:    string(state),
		IsOwner:  rc.IsOwnerOfActiveFamily,
		Families: make([]FamilyResponse, len(rc.Families)),
	}

	for i, f := range rc.Families {
		response.Families[i] = ToFamilyResponse(f)
	}

	if rc.ActiveFamilyID != uuid.Nil {
		id := rc.ActiveFamilyID.String()
		response.ActiveFamilyID = &id
	}
	if rc.ActiveFamily != nil {
		active := ToFamilyResponse(rc.ActiveFamily)
		response.ActiveFamily = &active
	}

	return response
}
