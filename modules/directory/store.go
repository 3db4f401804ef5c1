package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/granjalabs/avikit/pkg/tenancy"
)

// Store is the Postgres-backed company directory. It implements the tenancy
// lookup interfaces: Directory, MembershipStore and LoginStore.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over the given pool. The pool's lifecycle stays
// with the caller.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// FindByName looks a company up by case-insensitive exact name match.
func (s *Store) FindByName(ctx context.Context, name string) (*tenancy.Company, error) {
	var company tenancy.Company
	err := s.pool.QueryRow(ctx,
		`SELECT id, name FROM companies WHERE lower(name) = lower($1)`,
		name,
	).Scan(&company.ID, &company.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tenancy.ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// IsMember reports whether a membership row exists for (user, company).
func (s *Store) IsMember(ctx context.Context, userID uuid.UUID, companyID int64) (bool, error) {
	var member bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_companies WHERE user_id = $1 AND company_id = $2)`,
		userID, companyID,
	).Scan(&member)
	if err != nil {
		return false, err
	}
	return member, nil
}

// EmailByUserID resolves the login email for a user.
func (s *Store) EmailByUserID(ctx context.Context, userID uuid.UUID) (string, error) {
	var email string
	err := s.pool.QueryRow(ctx,
		`SELECT email FROM user_logins WHERE user_id = $1`,
		userID,
	).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", tenancy.ErrLoginNotFound
		}
		return "", err
	}
	return email, nil
}

// ListByUser returns the companies the user is a member of, ordered by name.
// Feeds the company switcher in the UI.
func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]tenancy.Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT c.id, c.name
		   FROM companies c
		   JOIN user_companies uc ON uc.company_id = c.id
		  WHERE uc.user_id = $1
		  ORDER BY c.name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []tenancy.Company
	for rows.Next() {
		var c tenancy.Company
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
