package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	now := time.Now()
	query := `INSERT INTO companies (name, owner_id, website, location, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		company.Name, company.OwnerID, company.Website, company.Location, now,
	).Scan(&company.ID)
	if err != nil {
		return err
	}
	company.CreatedOn = now
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id int32) (*domain.Company, error) {
	company := &domain.Company{}
	query := `SELECT id, name, owner_id, website, location, created_on FROM companies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.OwnerID, &company.Website, &company.Location, &company.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return company, nil
}
