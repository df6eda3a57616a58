package service

import (
	"context"
	"fmt"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

type jobService struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
}

func NewJobService(jobRepo repository.JobRepository, companyRepo repository.CompanyRepository) JobService {
	return &jobService{jobRepo: jobRepo, companyRepo: companyRepo}
}

func (s *jobService) CreateJob(ctx context.Context, actor domain.Principal, job *domain.Job) error {
	if actor.Role != domain.RoleEmployer && !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if strings.TrimSpace(job.Title) == "" {
		return fmt.Errorf("%w: job title is required", domain.ErrInvalidInput)
	}

	if _, err := s.companyRepo.GetByID(ctx, job.CompanyID); err != nil {
		return fmt.Errorf("company %w", domain.ErrNotFound)
	}

	job.PostedBy = actor.UserID
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	return s.jobRepo.Create(ctx, job)
}

func (s *jobService) GetJob(ctx context.Context, id int32) (*domain.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobService) ListJobs(ctx context.Context, status domain.JobStatus, page, pageSize int32) ([]domain.Job, int32, error) {
	return s.jobRepo.List(ctx, status, page, pageSize)
}
