package postgres

import (
	"database/sql"

	"jobboard-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CompanyRepository
	repository.JobRepository
	repository.ApplicationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		CompanyRepository:      NewCompanyRepository(db),
		JobRepository:          NewJobRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// uniqueViolation is the postgres error code raised when an insert breaks a
// unique constraint.
const uniqueViolation = "23505"
