// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueFamilyInvitationEmail queues a family invitation email.
func (s *Service) QueueFamilyInvitationEmail(ctx context.Context, input adapter.QueueFamilyInvitationInput) error {
	subject := fmt.Sprintf("%s invited you to %s - Budget Tracker", input.InviterName, input.FamilyName)

	templateData := map[string]interface{}{
		"inviter_name":  input.InviterName,
		"inviter_email": input.InviterEmail,
		"family_name":   input.FamilyName,
		"invite_url":    input.InviteURL,
		"expires_in":    input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplateFamilyInvitation,
		input.InviteEmail,
		"", // Recipient name unknown for invitations
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue family invitation email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
