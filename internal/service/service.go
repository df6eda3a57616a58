package service

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/event"
	"jobboard-backend/internal/repository"
)

// EventPublisher is the side-effect channel services emit on after a state
// change has committed. event.Bus satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, evt event.Event)
}

type ApplicationService interface {
	Submit(ctx context.Context, applicantID, jobID int32, fields []domain.Field) (*domain.Application, error)
	SetStatus(ctx context.Context, actor domain.Principal, applicationID int32, status domain.ApplicationStatus) (*domain.Application, error)
	Withdraw(ctx context.Context, applicantID, applicationID int32) (*domain.Application, error)
	Get(ctx context.Context, actor domain.Principal, applicationID int32) (*domain.Application, error)
	ListMine(ctx context.Context, applicantID int32, f repository.ApplicationFilter) ([]domain.Application, int32, error)
	ListForJob(ctx context.Context, actor domain.Principal, jobID int32, f repository.ApplicationFilter) ([]domain.Application, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
	UnreadCount(ctx context.Context, userID int32) (int32, error)
}

type JobService interface {
	CreateJob(ctx context.Context, actor domain.Principal, job *domain.Job) error
	GetJob(ctx context.Context, id int32) (*domain.Job, error)
	ListJobs(ctx context.Context, status domain.JobStatus, page, pageSize int32) ([]domain.Job, int32, error)
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
