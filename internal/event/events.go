package event

import "jobboard-backend/internal/domain"

// Event is a domain event emitted by a service after its state change has
// committed. Handlers run after the fact; nothing they do can roll the change
// back.
type Event interface {
	Name() string
}

type ApplicationSubmitted struct {
	Application *domain.Application
	Job         *domain.Job
	Applicant   *domain.User
}

func (ApplicationSubmitted) Name() string { return "application.submitted" }

type ApplicationStatusChanged struct {
	Application *domain.Application
	Job         *domain.Job
	NewStatus   domain.ApplicationStatus
	ActorID     int32
}

func (ApplicationStatusChanged) Name() string { return "application.status_changed" }

type ApplicationWithdrawn struct {
	Application *domain.Application
	Job         *domain.Job
	Applicant   *domain.User
}

func (ApplicationWithdrawn) Name() string { return "application.withdrawn" }
