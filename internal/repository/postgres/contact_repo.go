package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kitji-studios-backend/internal/domain"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (id, name, email, company, project_type, budget, message, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		submission.ID, submission.Name, submission.Email, submission.Company,
		submission.ProjectType, submission.Budget, submission.Message, submission.CreatedAt,
	)
	return err
}

func (r *contactRepo) GetAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	query := `SELECT id, name, email, company, project_type, budget, message, created_at
              FROM contact_submissions ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubmissions(rows)
}

func (r *contactRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	query := `SELECT id, name, email, company, project_type, budget, message, created_at
              FROM contact_submissions ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	submissions, err := scanSubmissions(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	query := `SELECT id, name, email, company, project_type, budget, message, created_at
              FROM contact_submissions WHERE id = $1`

	var s domain.ContactSubmission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Company,
		&s.ProjectType, &s.Budget, &s.Message, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func scanSubmissions(rows pgx.Rows) ([]domain.ContactSubmission, error) {
	var submissions []domain.ContactSubmission
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.Company,
			&s.ProjectType, &s.Budget, &s.Message, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
