package repository

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id int32) (*domain.Company, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int32) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	List(ctx context.Context, status domain.JobStatus, page, pageSize int32) ([]domain.Job, int32, error)
	// CloseExpired flips open jobs whose deadline has passed to CLOSED and
	// returns how many were affected.
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

// ApplicationFilter narrows and pages application listings.
type ApplicationFilter struct {
	Status    domain.ApplicationStatus // empty means all
	Page      int32
	PageSize  int32
	SortBy    string // "created_on" or "updated_on"
	SortOrder string // "asc" or "desc"
}

type ApplicationRepository interface {
	// Create inserts the application and increments the job's application
	// counter in one transaction. A second application for the same
	// (job, applicant) pair fails with domain.ErrDuplicateApplication,
	// enforced by the store's uniqueness constraint.
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error
	ListByApplicant(ctx context.Context, applicantID int32, f ApplicationFilter) ([]domain.Application, int32, error)
	ListByJob(ctx context.Context, jobID int32, f ApplicationFilter) ([]domain.Application, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
	UnreadCount(ctx context.Context, userID int32) (int32, error)
}
