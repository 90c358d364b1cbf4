package entity

import (
	"errors"
	"testing"
	"time"
)

func TestEmailJobLifecycle(t *testing.T) {
	job := NewEmailJob(TemplateFamilyInvitation, "bob@example.com", "Bob", "You're invited", nil)

	if job.Status != EmailStatusPending {
		t.Fatalf("new job status = %q, want %q", job.Status, EmailStatusPending)
	}
	if !job.IsReadyToProcess() {
		// ScheduledAt is set to creation time; give the clock a beat.
		time.Sleep(time.Millisecond)
		if !job.IsReadyToProcess() {
			t.Fatal("new job should be ready to process")
		}
	}

	job.MarkProcessing()
	if job.Status != EmailStatusProcessing {
		t.Errorf("status = %q, want %q", job.Status, EmailStatusProcessing)
	}

	job.MarkSent("resend-abc123")
	if job.Status != EmailStatusSent {
		t.Errorf("status = %q, want %q", job.Status, EmailStatusSent)
	}
	if job.ProviderID != "resend-abc123" {
		t.Errorf("provider id = %q, want %q", job.ProviderID, "resend-abc123")
	}
	if job.ProcessedAt == nil {
		t.Error("ProcessedAt should be set after sending")
	}
}

func TestEmailJobMarkFailed(t *testing.T) {
	sendErr := errors.New("connection refused")

	t.Run("transient failures reschedule with backoff", func(t *testing.T) {
		job := NewEmailJob(TemplateFamilyInvitation, "bob@example.com", "", "subject", nil)

		job.MarkFailed(sendErr, false)
		if job.Status != EmailStatusPending {
			t.Fatalf("status after first failure = %q, want %q", job.Status, EmailStatusPending)
		}
		if job.Attempts != 1 {
			t.Errorf("attempts = %d, want 1", job.Attempts)
		}
		if job.LastError != sendErr.Error() {
			t.Errorf("last error = %q, want %q", job.LastError, sendErr.Error())
		}
		if !job.ScheduledAt.After(time.Now().UTC().Add(30 * time.Second)) {
			t.Error("second attempt should be scheduled at least a minute out")
		}
		if job.IsReadyToProcess() {
			t.Error("rescheduled job must not be ready before its backoff elapses")
		}
	})

	t.Run("exhausted attempts fail permanently", func(t *testing.T) {
		job := NewEmailJob(TemplateFamilyInvitation, "bob@example.com", "", "subject", nil)

		for i := 0; i < job.MaxAttempts; i++ {
			job.MarkFailed(sendErr, false)
		}
		if job.Status != EmailStatusFailed {
			t.Errorf("status = %q, want %q", job.Status, EmailStatusFailed)
		}
		if job.ProcessedAt == nil {
			t.Error("ProcessedAt should be set on terminal failure")
		}
	})

	t.Run("permanent failures skip retries", func(t *testing.T) {
		job := NewEmailJob(TemplateFamilyInvitation, "bob@example.com", "", "subject", nil)

		job.MarkFailed(sendErr, true)
		if job.Status != EmailStatusFailed {
			t.Errorf("status = %q, want %q", job.Status, EmailStatusFailed)
		}
		if job.Attempts != 1 {
			t.Errorf("attempts = %d, want 1", job.Attempts)
		}
	})
}
