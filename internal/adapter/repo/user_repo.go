package repo

import (
	"context"
	"encoding/json"

	"videoserver/internal/domain"
	"videoserver/internal/infra"
	"videoserver/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a user repository backed by PostgreSQL.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// Create inserts the profile, or refreshes it when the id already exists.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertUser,
		user.ID,
		user.DisplayName,
		user.Email,
		user.PhotoURL,
	)
	return err
}

// GetByID fetches one profile with its entitlement set.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id)
	user, err := scanUser(row.Scan)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListAll returns every profile. The population is small enough for the
// scheduled refresh to hold in memory.
func (r *UserRepositoryPG) ListAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectAllUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func scanUser(scan func(dest ...any) error) (*domain.User, error) {
	var user domain.User
	var entitlements []byte
	if err := scan(
		&user.ID,
		&user.DisplayName,
		&user.Email,
		&user.PhotoURL,
		&entitlements,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// A corrupt entitlements document reads as an empty set: the membership
	// check then fails closed instead of failing the whole scan.
	if len(entitlements) > 0 {
		var set domain.EntitlementSet
		if err := json.Unmarshal(entitlements, &set); err == nil {
			user.Entitlements = set
		}
	}
	return &user, nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
