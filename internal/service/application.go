package service

import (
	"context"
	"fmt"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/event"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository"
)

type applicationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	events   EventPublisher
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	events EventPublisher,
) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		events:   events,
	}
}

func (s *applicationService) Submit(ctx context.Context, applicantID, jobID int32, fields []domain.Field) (*domain.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusOpen {
		return nil, domain.ErrJobNotOpen
	}

	if err := validateRequiredFields(job.Requirements, fields); err != nil {
		return nil, err
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		EmployerID:  job.PostedBy,
		CompanyID:   job.CompanyID,
		Fields:      fields,
		Status:      domain.ApplicationStatusSubmitted,
	}

	// The repository enforces the (job, applicant) uniqueness constraint and
	// increments the job's counter in the same transaction. A racing duplicate
	// submit fails here, never silently succeeds.
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	applicant, err := s.userRepo.GetByID(ctx, applicantID)
	if err != nil {
		logger.Warn("Failed to load applicant for notification", "applicant_id", applicantID, "error", err)
	}
	s.events.Publish(ctx, event.ApplicationSubmitted{
		Application: app,
		Job:         job,
		Applicant:   applicant,
	})

	return app, nil
}

func (s *applicationService) SetStatus(ctx context.Context, actor domain.Principal, applicationID int32, status domain.ApplicationStatus) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.EmployerID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if app.Status.IsTerminal() {
		return nil, domain.ErrApplicationResolved
	}
	if !domain.CanTransition(app.Status, status) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	app.Status = status

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		logger.Warn("Failed to load job for notification", "job_id", app.JobID, "error", err)
		job = &domain.Job{ID: app.JobID}
	}
	s.events.Publish(ctx, event.ApplicationStatusChanged{
		Application: app,
		Job:         job,
		NewStatus:   status,
		ActorID:     actor.UserID,
	})

	return app, nil
}

func (s *applicationService) Withdraw(ctx context.Context, applicantID, applicationID int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.ApplicantID != applicantID {
		return nil, domain.ErrForbidden
	}
	if app.Status.IsResolved() {
		return nil, domain.ErrApplicationResolved
	}
	if app.Status == domain.ApplicationStatusWithdrawn {
		return app, nil
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusWithdrawn); err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatusWithdrawn

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		logger.Warn("Failed to load job for notification", "job_id", app.JobID, "error", err)
		job = &domain.Job{ID: app.JobID}
	}
	applicant, err := s.userRepo.GetByID(ctx, applicantID)
	if err != nil {
		logger.Warn("Failed to load applicant for notification", "applicant_id", applicantID, "error", err)
	}
	s.events.Publish(ctx, event.ApplicationWithdrawn{
		Application: app,
		Job:         job,
		Applicant:   applicant,
	})

	return app, nil
}

func (s *applicationService) Get(ctx context.Context, actor domain.Principal, applicationID int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != actor.UserID && app.EmployerID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return app, nil
}

func (s *applicationService) ListMine(ctx context.Context, applicantID int32, f repository.ApplicationFilter) ([]domain.Application, int32, error) {
	if f.Status != "" && !f.Status.IsValid() {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.appRepo.ListByApplicant(ctx, applicantID, f)
}

func (s *applicationService) ListForJob(ctx context.Context, actor domain.Principal, jobID int32, f repository.ApplicationFilter) ([]domain.Application, int32, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}
	if job.PostedBy != actor.UserID && !actor.IsAdmin() {
		return nil, 0, domain.ErrForbidden
	}
	if f.Status != "" && !f.Status.IsValid() {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.appRepo.ListByJob(ctx, jobID, f)
}

// validateRequiredFields checks every required job requirement has a matching
// non-empty answer, matched by name.
func validateRequiredFields(reqs []domain.Requirement, fields []domain.Field) error {
	for _, req := range reqs {
		if !req.Required {
			continue
		}
		found := false
		for _, field := range fields {
			if field.Name == req.Name && strings.TrimSpace(field.Value) != "" {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", domain.ErrMissingField, req.Name)
		}
	}
	return nil
}
