// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueFamilyInvitationInput represents the input for queueing an invitation email.
type QueueFamilyInvitationInput struct {
	InviterName  string
	InviterEmail string
	FamilyName   string
	InviteEmail  string
	InviteURL    string
	ExpiresIn    string
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueFamilyInvitationEmail queues a family invitation email.
	QueueFamilyInvitationEmail(ctx context.Context, input QueueFamilyInvitationInput) error
}

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error
}
