package identity

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) CreateUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id,email,name,role,password_hash,email_verified,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		u.ID, strings.ToLower(u.Email), u.Name, u.Role, u.PasswordHash, u.EmailVerified, u.CreatedAt.Unix())
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id,email,name,role,password_hash,email_verified,created_at FROM users WHERE email=$1`,
		strings.ToLower(email)))
}

func (s *SQLStore) GetUserByID(ctx context.Context, id string) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id,email,name,role,password_hash,email_verified,created_at FROM users WHERE id=$1`, id))
}

func (s *SQLStore) scanUser(row *sql.Row) (User, error) {
	var u User
	var created int64
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.EmailVerified, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.CreatedAt = time.Unix(created, 0)
	return u, nil
}

func (s *SQLStore) CreateProfile(ctx context.Context, p Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id,display_name,bio,goals,favorite_module,updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		p.UserID, p.DisplayName, p.Bio, p.Goals, p.FavoriteModule, p.UpdatedAt.Unix())
	return err
}

func (s *SQLStore) GetProfile(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	var updated int64
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id,display_name,bio,goals,favorite_module,updated_at FROM profiles WHERE user_id=$1`,
		userID).Scan(&p.UserID, &p.DisplayName, &p.Bio, &p.Goals, &p.FavoriteModule, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	p.UpdatedAt = time.Unix(updated, 0)
	return p, nil
}

func (s *SQLStore) UpdateProfile(ctx context.Context, p Profile) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET display_name=$1, bio=$2, goals=$3, favorite_module=$4, updated_at=$5
		 WHERE user_id=$6`,
		p.DisplayName, p.Bio, p.Goals, p.FavoriteModule, p.UpdatedAt.Unix(), p.UserID)
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key") // postgres
}
