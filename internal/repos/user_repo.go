package repos

import (
	"vitrine/internal/domain"

	"github.com/jmoiron/sqlx"
)

// sessionHorizon is the fixed lifetime of a session row, independent of
// activity. Mirrors the 7-day cookie expiry set by the auth handler.
const sessionHorizon = "-7 days"

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,email,password_hash) VALUES(?,?,?)`,
		u.ID, u.Email, u.Hash)
	return err
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,password_hash,created_at FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,password_hash,created_at FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// IssueSession records a fresh token for the user.
func (r *UserRepo) IssueSession(token, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id) VALUES(?,?)
	                     ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,created_at=CURRENT_TIMESTAMP`,
		token, userID)
	return err
}

// SessionUser resolves a token to its user. Tokens older than the fixed
// horizon are treated like unknown tokens (sql.ErrNoRows).
func (r *UserRepo) SessionUser(token string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.password_hash,u.created_at
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=? AND s.created_at >= datetime('now',?)`, token, sessionHorizon)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RevokeSession destroys a token. Unknown tokens are a no-op.
func (r *UserRepo) RevokeSession(token string) error {
	_, err := r.DB.Exec(`DELETE FROM sessions WHERE id=?`, token)
	return err
}

// PurgeExpiredSessions drops rows past the horizon; resolution already
// ignores them, this just keeps the table small.
func (r *UserRepo) PurgeExpiredSessions() error {
	_, err := r.DB.Exec(`DELETE FROM sessions WHERE created_at < datetime('now',?)`, sessionHorizon)
	return err
}
