package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/awf1337/instantly/internal/model"
)

// ErrNotFound is returned when no email matches the requested id.
var ErrNotFound = errors.New("email not found")

type EmailRepository struct {
	db *pgxpool.Pool
}

func NewEmailRepository(db *pgxpool.Pool) *EmailRepository {
	return &EmailRepository{db: db}
}

// Create inserts the email and returns the store-assigned id.
func (r *EmailRepository) Create(ctx context.Context, e *model.Email) (int, error) {
	query := `
        INSERT INTO emails (to_addr, cc, bcc, subject, body, user_fk, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, e.To, e.CC, e.BCC, e.Subject, e.Body, e.UserFK).Scan(&id)
	return id, err
}

// List returns all emails, newest first. Ties on created_at break by id
// descending so ordering stays deterministic.
func (r *EmailRepository) List(ctx context.Context) ([]model.Email, error) {
	query := `
        SELECT id, to_addr, cc, bcc, subject, body, user_fk, created_at
        FROM emails
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmails(rows)
}

// FindByID returns the email with the given id, or ErrNotFound.
func (r *EmailRepository) FindByID(ctx context.Context, id int) (*model.Email, error) {
	query := `
        SELECT id, to_addr, cc, bcc, subject, body, user_fk, created_at
        FROM emails
        WHERE id = $1
    `
	var e model.Email
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.To,
		&e.CC,
		&e.BCC,
		&e.Subject,
		&e.Body,
		&e.UserFK,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListByOwner returns all emails for one owner, newest first.
func (r *EmailRepository) ListByOwner(ctx context.Context, owner string) ([]model.Email, error) {
	query := `
        SELECT id, to_addr, cc, bcc, subject, body, user_fk, created_at
        FROM emails
        WHERE user_fk = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmails(rows)
}

func scanEmails(rows pgx.Rows) ([]model.Email, error) {
	emails := []model.Email{}
	for rows.Next() {
		var e model.Email
		err := rows.Scan(
			&e.ID,
			&e.To,
			&e.CC,
			&e.BCC,
			&e.Subject,
			&e.Body,
			&e.UserFK,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}
