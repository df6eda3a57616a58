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

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, job_id, applicant_id, employer_id, company_id, fields, status, created_on, updated_on`

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	fields, err := json.Marshal(app.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal application fields: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO applications (job_id, applicant_id, employer_id, company_id, fields, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		app.JobID, app.ApplicantID, app.EmployerID, app.CompanyID, fields, app.Status, now, now,
	).Scan(&app.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE jobs SET application_count = application_count + 1, updated_on = $1 WHERE id = $2`,
		now, app.JobID)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	app.CreatedOn = now
	app.UpdatedOn = now
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = $1, updated_on = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID int32, f repository.ApplicationFilter) ([]domain.Application, int32, error) {
	return r.list(ctx, "applicant_id", applicantID, f)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int32, f repository.ApplicationFilter) ([]domain.Application, int32, error) {
	return r.list(ctx, "job_id", jobID, f)
}

func (r *applicationRepository) list(ctx context.Context, ownerColumn string, ownerID int32, f repository.ApplicationFilter) ([]domain.Application, int32, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE ` + ownerColumn + ` = $1`
	args := []interface{}{ownerID}
	argIdx := 2
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, f.Status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d",
		sortColumn(f.SortBy), sortDirection(f.SortOrder), argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, *app)
	}
	return apps, count, rows.Err()
}

// sortColumn whitelists the sortable columns; anything else falls back to
// created_on so caller input never reaches the query text.
func sortColumn(sortBy string) string {
	if sortBy == "updated_on" {
		return "updated_on"
	}
	return "created_on"
}

func sortDirection(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var app domain.Application
	var fields []byte
	err := row.Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.EmployerID, &app.CompanyID,
		&fields, &app.Status, &app.CreatedOn, &app.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &app.Fields); err != nil {
			return nil, err
		}
	}
	return &app, nil
}
