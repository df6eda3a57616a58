// Package notify turns application lifecycle events into persisted
// notifications and best-effort realtime pushes. It runs on the event bus,
// decoupled from the state machine: a failure here is logged and swallowed,
// never surfaced to the user whose action triggered the event.
package notify

import (
	"context"
	"fmt"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/event"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/realtime"
	"jobboard-backend/internal/repository"
)

// Dispatcher is the realtime delivery side. realtime.Hub satisfies it.
type Dispatcher interface {
	Notify(userID int32, eventName string, payload interface{})
}

type Handler struct {
	noteRepo   repository.NotificationRepository
	dispatcher Dispatcher
}

func NewHandler(noteRepo repository.NotificationRepository, dispatcher Dispatcher) *Handler {
	return &Handler{noteRepo: noteRepo, dispatcher: dispatcher}
}

func (h *Handler) Name() string { return "notify" }

func (h *Handler) Handle(ctx context.Context, evt event.Event) error {
	switch e := evt.(type) {
	case event.ApplicationSubmitted:
		return h.applicationSubmitted(ctx, e)
	case event.ApplicationStatusChanged:
		return h.statusChanged(ctx, e)
	case event.ApplicationWithdrawn:
		return h.withdrawn(ctx, e)
	}
	return nil
}

func (h *Handler) applicationSubmitted(ctx context.Context, e event.ApplicationSubmitted) error {
	applicantName := "Someone"
	var senderID *int32
	if e.Applicant != nil {
		applicantName = e.Applicant.Name
		senderID = &e.Applicant.ID
	}

	note := &domain.Notification{
		RecipientID:       e.Application.EmployerID,
		SenderID:          senderID,
		Type:              domain.NotificationTypeApplicationSubmitted,
		Message:           fmt.Sprintf("%s applied for your job: %s.", applicantName, e.Job.Title),
		Link:              fmt.Sprintf("/dashboard/jobs/%d/applications", e.Job.ID),
		RelatedEntityID:   e.Application.ID,
		RelatedEntityType: "application",
	}
	return h.deliver(ctx, note, e.Application)
}

func (h *Handler) statusChanged(ctx context.Context, e event.ApplicationStatusChanged) error {
	note := &domain.Notification{
		RecipientID: e.Application.ApplicantID,
		SenderID:    &e.ActorID,
		Type:        domain.NotificationTypeApplicationStatus,
		Message: fmt.Sprintf("The status of your application for %q has been updated to: %s.",
			e.Job.Title, strings.ToLower(string(e.NewStatus))),
		Link:              fmt.Sprintf("/dashboard/applications/%d", e.Application.ID),
		RelatedEntityID:   e.Application.ID,
		RelatedEntityType: "application",
	}
	return h.deliver(ctx, note, e.Application)
}

func (h *Handler) withdrawn(ctx context.Context, e event.ApplicationWithdrawn) error {
	applicantName := "An applicant"
	var senderID *int32
	if e.Applicant != nil {
		applicantName = e.Applicant.Name
		senderID = &e.Applicant.ID
	}

	note := &domain.Notification{
		RecipientID:       e.Application.EmployerID,
		SenderID:          senderID,
		Type:              domain.NotificationTypeApplicationWithdrawn,
		Message:           fmt.Sprintf("%s withdrew their application for: %s.", applicantName, e.Job.Title),
		Link:              fmt.Sprintf("/dashboard/jobs/%d/applications", e.Job.ID),
		RelatedEntityID:   e.Application.ID,
		RelatedEntityType: "application",
	}
	return h.deliver(ctx, note, e.Application)
}

// deliver persists the notification, then attempts the realtime push. The
// push carries the persisted record so the client sees the same id it would
// get from a refetch, plus a refresh hint with the changed application.
func (h *Handler) deliver(ctx context.Context, note *domain.Notification, app *domain.Application) error {
	if err := h.noteRepo.Create(ctx, note); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	h.dispatcher.Notify(note.RecipientID, realtime.EventNotification, note)
	h.dispatcher.Notify(note.RecipientID, realtime.EventApplicationUpdate, app)

	logger.Debug("Notification delivered", "recipient_id", note.RecipientID, "type", note.Type)
	return nil
}
