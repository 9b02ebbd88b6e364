package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/abdiesu04/nexus/internal/db"
	"github.com/abdiesu04/nexus/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Authenticate checks the password and returns the user record on success.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user,
		"SELECT id, username, password, role FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// EnsureUser creates the user if it does not exist yet. Used to seed the
// initial admin account on startup.
func (r *UserRepo) EnsureUser(ctx context.Context, id, username, password, role string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO users (id, username, password, role)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (username) DO NOTHING
    `, id, username, string(hashed), role)
	return err
}
