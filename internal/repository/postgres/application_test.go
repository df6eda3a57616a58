package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
	"jobboard-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		app := &domain.Application{
			JobID:       5,
			ApplicantID: 2,
			EmployerID:  9,
			CompanyID:   3,
			Fields:      []domain.Field{{Name: "cover_letter", Type: "text", Value: "hi"}},
			Status:      domain.ApplicationStatusSubmitted,
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO applications").
			WithArgs(app.JobID, app.ApplicantID, app.EmployerID, app.CompanyID,
				sqlmock.AnyArg(), app.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectExec("UPDATE jobs SET application_count").
			WithArgs(sqlmock.AnyArg(), app.JobID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, app)
		require.NoError(t, err)
		assert.Equal(t, int32(11), app.ID)
		assert.False(t, app.CreatedOn.IsZero())
	})

	t.Run("DuplicatePair", func(t *testing.T) {
		app := &domain.Application{JobID: 5, ApplicantID: 2, Status: domain.ApplicationStatusSubmitted}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO applications").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "applications_job_id_applicant_id_key"})
		mock.ExpectRollback()

		err := repo.Create(ctx, app)
		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("CounterUpdateFailureRollsBack", func(t *testing.T) {
		app := &domain.Application{JobID: 5, ApplicantID: 2, Status: domain.ApplicationStatusSubmitted}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO applications").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectExec("UPDATE jobs SET application_count").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Create(ctx, app)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	columns := []string{"id", "job_id", "applicant_id", "employer_id", "company_id", "fields", "status", "created_on", "updated_on"}

	t.Run("Success", func(t *testing.T) {
		fields, _ := json.Marshal([]domain.Field{{Name: "cover_letter", Type: "text", Value: "hi"}})
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
			WithArgs(int32(11)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(11, 5, 2, 9, 3, fields, "SUBMITTED", now, now))

		app, err := repo.GetByID(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, int32(5), app.JobID)
		assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
		require.Len(t, app.Fields, 1)
		assert.Equal(t, "cover_letter", app.Fields[0].Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusShortlisted, sqlmock.AnyArg(), int32(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 11, domain.ApplicationStatusShortlisted)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusShortlisted, sqlmock.AnyArg(), int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 404, domain.ApplicationStatusShortlisted)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_ListByApplicant(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	columns := []string{"id", "job_id", "applicant_id", "employer_id", "company_id", "fields", "status", "created_on", "updated_on"}
	now := time.Now()

	t.Run("WithStatusFilter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM`).
			WithArgs(int32(2), domain.ApplicationStatusSubmitted).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE applicant_id").
			WithArgs(int32(2), domain.ApplicationStatusSubmitted, int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(11, 5, 2, 9, 3, []byte("[]"), "SUBMITTED", now, now))

		apps, total, err := repo.ListByApplicant(ctx, 2, repository.ApplicationFilter{
			Status: domain.ApplicationStatusSubmitted,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(1), total)
		require.Len(t, apps, 1)
		assert.Equal(t, int32(11), apps[0].ID)
	})

	t.Run("SecondPage", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM`).
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE applicant_id").
			WithArgs(int32(2), int32(10), int32(10)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, total, err := repo.ListByApplicant(ctx, 2, repository.ApplicationFilter{Page: 2, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int32(25), total)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
