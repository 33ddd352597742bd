package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
	"github.com/buildcrew/construction_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const appUserColumns = `user_id, username, password_hash, name, created_at, last_updated_at`

// uniqueViolationCode is the Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

type PgxAppUserRepository struct {
	db *pgxpool.Pool
}

func newPgxAppUserRepository(db *pgxpool.Pool) portsrepo.AppUserRepositoryFacade {
	return &PgxAppUserRepository{db: db}
}

var _ portsrepo.AppUserRepositoryFacade = (*PgxAppUserRepository)(nil)

func scanAppUser(row pgx.Row) (*models.AppUser, error) {
	var m models.AppUser
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxAppUserRepository) SaveAppUser(ctx context.Context, user domain.AppUser) (int64, error) {
	m := mapping.ToModelAppUser(user)
	query := `
		INSERT INTO app_users (username, password_hash, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id;
	`
	var userID int64
	err := r.db.QueryRow(ctx, query,
		m.Username,
		m.PasswordHash,
		m.Name,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, fmt.Errorf("username already taken: %w", apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}
	return userID, nil
}

func (r *PgxAppUserRepository) FindAppUserByID(ctx context.Context, userID int64) (*domain.AppUser, error) {
	query := `SELECT ` + appUserColumns + ` FROM app_users WHERE user_id = $1;`
	m, err := scanAppUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}
	d := mapping.ToDomainAppUser(*m)
	return &d, nil
}

func (r *PgxAppUserRepository) FindAppUserByUsername(ctx context.Context, username string) (*domain.AppUser, error) {
	query := `SELECT ` + appUserColumns + ` FROM app_users WHERE username = $1;`
	m, err := scanAppUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	d := mapping.ToDomainAppUser(*m)
	return &d, nil
}
