package repository

import (
	"context"
	"errors"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrSessionNotFound = errors.New("session not found")

// PgxPool is the subset of pgxpool.Pool the repository uses; tests
// substitute a pgxmock pool.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionRepository is the durable side of the session store. One row per
// signed-in client: the backend bearer token plus cached identity fields.
type SessionRepository struct {
	DB PgxPool
}

func NewSessionRepository(db PgxPool) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Save overwrites whatever was stored for the session id. Writes are plain
// overwrites; there is no transactional guarantee across fields beyond the
// single-row upsert.
func (r *SessionRepository) Save(ctx context.Context, s *model.Session) error {
	query := `INSERT INTO sessions (session_id, token, user_id, user_name, user_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO UPDATE SET
			token = EXCLUDED.token,
			user_id = EXCLUDED.user_id,
			user_name = EXCLUDED.user_name,
			user_email = EXCLUDED.user_email`
	_, err := r.DB.Exec(ctx, query, s.ID, s.Token, s.UserID, s.UserName, s.UserEmail, s.CreatedAt)
	return err
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	query := `SELECT session_id, token, user_id, user_name, user_email, created_at
		FROM sessions
		WHERE session_id = $1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&s.ID, &s.Token, &s.UserID, &s.UserName, &s.UserEmail, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the session row. Deleting an absent session is not an
// error; logout is idempotent.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, id)
	return err
}
