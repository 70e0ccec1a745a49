package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// PostgresStore persists sessions in the admin_sessions table (see migrations/).
type PostgresStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

type sessionRow struct {
	ID        string    `db:"id"`
	Token     string    `db:"token"`
	UserData  []byte    `db:"user_data"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	userData, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	query := `
		INSERT INTO admin_sessions (id, token, user_data, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET token = EXCLUDED.token, user_data = EXCLUDED.user_data, expires_at = EXCLUDED.expires_at
	`
	if _, err := p.db.ExecContext(ctx, query, s.ID, s.Token, userData, s.CreatedAt, s.ExpiresAt); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	var row sessionRow

	query := `SELECT id, token, user_data, created_at, expires_at FROM admin_sessions WHERE id = $1`
	if err := p.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	s := &Session{
		ID:        row.ID,
		Token:     row.Token,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
	if err := json.Unmarshal(row.UserData, &s.User); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	if s.Expired(p.now()) {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (p *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := p.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE expires_at <= $1`, p.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
