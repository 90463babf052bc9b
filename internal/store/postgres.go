package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/govtec-events/backend/internal/models"
)

// PostgresStore implements Storage over a pgx pool. ID assignment rides on
// the registrations sequence, which serializes concurrent creates without an
// application-level lock. The valid-code set stays in memory; codes are
// process-lifetime configuration, not data.
type PostgresStore struct {
	pool       *pgxpool.Pool
	validCodes map[string]struct{}
}

// NewPostgresStore creates a Postgres-backed store with the given valid codes.
func NewPostgresStore(pool *pgxpool.Pool, codes []string) *PostgresStore {
	valid := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		valid[c] = struct{}{}
	}
	return &PostgresStore{pool: pool, validCodes: valid}
}

// CreateRegistration inserts the record and fills ID and CreatedAt from the
// database defaults.
func (s *PostgresStore) CreateRegistration(ctx context.Context, reg *models.Registration) error {
	if reg.CommunicationMethod == "" {
		reg.CommunicationMethod = models.CommunicationEmail
	}
	const q = `INSERT INTO registrations
		(first_name, last_name, email, phone, company, job_title, data_consent, marketing_consent, communication_method, registration_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
	return s.pool.QueryRow(ctx, q,
		reg.FirstName, reg.LastName, reg.Email, reg.Phone,
		reg.Company, reg.JobTitle, reg.DataConsent, reg.MarketingConsent,
		reg.CommunicationMethod, reg.RegistrationCode,
	).Scan(&reg.ID, &reg.CreatedAt)
}

// GetRegistration returns the record or (nil, nil) when absent.
func (s *PostgresStore) GetRegistration(ctx context.Context, id int64) (*models.Registration, error) {
	const q = `SELECT id, first_name, last_name, email, phone, company, job_title, data_consent, marketing_consent, communication_method, registration_code, created_at
		FROM registrations WHERE id = $1`
	var reg models.Registration
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&reg.ID, &reg.FirstName, &reg.LastName, &reg.Email, &reg.Phone,
		&reg.Company, &reg.JobTitle, &reg.DataConsent, &reg.MarketingConsent,
		&reg.CommunicationMethod, &reg.RegistrationCode, &reg.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetAllRegistrations returns all records in creation order.
func (s *PostgresStore) GetAllRegistrations(ctx context.Context) ([]*models.Registration, error) {
	const q = `SELECT id, first_name, last_name, email, phone, company, job_title, data_consent, marketing_consent, communication_method, registration_code, created_at
		FROM registrations ORDER BY id`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.Registration
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(
			&reg.ID, &reg.FirstName, &reg.LastName, &reg.Email, &reg.Phone,
			&reg.Company, &reg.JobTitle, &reg.DataConsent, &reg.MarketingConsent,
			&reg.CommunicationMethod, &reg.RegistrationCode, &reg.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}

// VerifyRegistrationCode checks exact-case membership in the valid-code set.
func (s *PostgresStore) VerifyRegistrationCode(ctx context.Context, code string) (bool, error) {
	_, ok := s.validCodes[code]
	return ok, nil
}

// CreateUser inserts a user. A duplicate username returns ErrUsernameTaken.
func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	const q = `INSERT INTO users (username) VALUES ($1) RETURNING id`
	err := s.pool.QueryRow(ctx, q, user.Username).Scan(&user.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrUsernameTaken
	}
	return err
}

// GetUser returns the user or (nil, nil) when absent.
func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const q = `SELECT id, username FROM users WHERE id = $1`
	var u models.User
	err := s.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByUsername returns the user with the username or (nil, nil).
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const q = `SELECT id, username FROM users WHERE username = $1`
	var u models.User
	err := s.pool.QueryRow(ctx, q, username).Scan(&u.ID, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
