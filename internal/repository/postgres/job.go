package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, company_id, posted_by, title, description, location, status, requirements, application_count, deadline, created_on, updated_on`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	reqs, err := json.Marshal(job.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	now := time.Now()
	query := `INSERT INTO jobs (company_id, posted_by, title, description, location, status, requirements, application_count, deadline, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10) RETURNING id`
	err = r.db.QueryRowContext(ctx, query,
		job.CompanyID, job.PostedBy, job.Title, job.Description, job.Location,
		job.Status, reqs, job.Deadline, now, now,
	).Scan(&job.ID)
	if err != nil {
		return err
	}
	job.CreatedOn = now
	job.UpdatedOn = now
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id int32) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	reqs, err := json.Marshal(job.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET title=$1, description=$2, location=$3, status=$4, requirements=$5, deadline=$6, updated_on=$7 WHERE id=$8`,
		job.Title, job.Description, job.Location, job.Status, reqs, job.Deadline, time.Now(), job.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) List(ctx context.Context, status domain.JobStatus, page, pageSize int32) ([]domain.Job, int32, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, count, rows.Err()
}

func (r *jobRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET status = $1, updated_on = $2 WHERE status = $3 AND deadline IS NOT NULL AND deadline <= $2`,
		domain.JobStatusClosed, now, domain.JobStatusOpen)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	var reqs []byte
	err := row.Scan(&job.ID, &job.CompanyID, &job.PostedBy, &job.Title, &job.Description,
		&job.Location, &job.Status, &reqs, &job.ApplicationCount, &job.Deadline,
		&job.CreatedOn, &job.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if len(reqs) > 0 {
		if err := json.Unmarshal(reqs, &job.Requirements); err != nil {
			return nil, err
		}
	}
	return &job, nil
}
