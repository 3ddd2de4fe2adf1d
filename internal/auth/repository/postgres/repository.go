package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/greenledger/auth-service/internal/auth/domain"
	autherror "github.com/greenledger/auth-service/internal/errors"
)

// PgxIface is the subset of pgxpool.Pool the repository uses; pgxmock
// implements it for tests.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, name, locale, timezone,
	       totp_secret, totp_enabled, email_verified, is_active, created_at, updated_at`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(email) = LOWER($1)
		LIMIT 1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := r.loadMemberships(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := r.loadMemberships(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var totpSecret *string

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.Locale, &user.Timezone, &totpSecret, &user.TotpEnabled,
		&user.EmailVerified, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if totpSecret != nil {
		user.TotpSecret = *totpSecret
	}

	return &user, nil
}

func (r *PostgresRepository) loadMemberships(ctx context.Context, user *domain.User) error {
	rows, err := r.db.Query(ctx, `
		SELECT space_id, role
		FROM space_members
		WHERE user_id = $1
	`, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.SpaceMembership
		if err := rows.Scan(&m.SpaceID, &m.Role); err != nil {
			return fmt.Errorf("failed to scan membership: %w", err)
		}
		user.Memberships = append(user.Memberships, m)
	}

	return rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, name, locale, timezone,
                           totp_enabled, email_verified, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, user.ID, user.Email, user.PasswordHash, user.Name, user.Locale, user.Timezone,
		user.TotpEnabled, user.EmailVerified, user.IsActive, user.CreatedAt, user.UpdatedAt)

	// Two concurrent registers can both pass the pre-insert lookup; the
	// unique index on email decides the loser here.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return autherror.ErrDuplicateEmail
	}

	return err
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now()
		WHERE id = $1
	`, userID, passwordHash)

	return err
}

func (r *PostgresRepository) EnableTwoFactor(ctx context.Context, userID, totpSecret string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET totp_secret = $2, totp_enabled = TRUE, updated_at = now()
		WHERE id = $1
	`, userID, totpSecret)

	return err
}

func (r *PostgresRepository) DisableTwoFactor(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET totp_secret = NULL, totp_enabled = FALSE, updated_at = now()
		WHERE id = $1
	`, userID)

	return err
}

func (r *PostgresRepository) CreateSession(ctx context.Context, s *domain.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (id, user_id, token_family, refresh_token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, s.UserID, s.TokenFamily, s.RefreshTokenHash, s.ExpiresAt, s.CreatedAt)

	return err
}

func (r *PostgresRepository) FindSessionByFamily(ctx context.Context, family string) (*domain.Session, error) {
	query := `
		SELECT id, user_id, token_family, refresh_token_hash, expires_at, created_at
		FROM sessions
		WHERE token_family = $1
		LIMIT 1;
	`
	var s domain.Session
	err := r.db.QueryRow(ctx, query, family).Scan(&s.ID, &s.UserID, &s.TokenFamily,
		&s.RefreshTokenHash, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return &s, nil
}

func (r *PostgresRepository) DeleteSessionByFamily(ctx context.Context, family string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token_family = $1`, family)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// RotateSession deletes the old family's row and inserts the next session
// in one transaction. The delete is the precondition: when it touches zero
// rows a concurrent rotation already consumed the token, nothing is
// persisted and the caller must fail the refresh.
func (r *PostgresRepository) RotateSession(ctx context.Context, oldFamily string, next *domain.Session) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin rotation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM sessions WHERE token_family = $1`, oldFamily)
	if err != nil {
		return false, fmt.Errorf("failed to delete rotated session: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO sessions (id, user_id, token_family, refresh_token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, next.ID, next.UserID, next.TokenFamily, next.RefreshTokenHash, next.ExpiresAt, next.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert rotated session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit rotation: %w", err)
	}

	return true, nil
}

func (r *PostgresRepository) DeleteAllSessionsForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)

	return err
}

func (r *PostgresRepository) Record(ctx context.Context, e *domain.AuditEvent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_events (id, user_id, action, ip_address, user_agent, created_at)
		VALUES (gen_random_uuid(), NULLIF($1, ''), $2, $3, $4, now())
	`, e.UserID, e.Action, e.IPAddress, e.UserAgent)

	return err
}
