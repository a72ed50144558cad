package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/ausawards/admin-api/internal/model"
)

// UserRepo persists users in the 'users' table. role_ids is a JSON
// array column. Save is an upsert keyed on id.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Save inserts or replaces a user row keyed by id.
func (r *UserRepo) Save(ctx context.Context, u *model.User) error {
	roleIDs, err := json.Marshal(u.RoleIDs)
	if err != nil {
		log.Printf("users: failed to encode role ids for user %s: %v", u.ID, err)
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO users (id, user_type, company_id, login_id, password_hash, role_ids)
		 VALUES (?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   user_type=VALUES(user_type), company_id=VALUES(company_id),
		   login_id=VALUES(login_id), password_hash=VALUES(password_hash),
		   role_ids=VALUES(role_ids)`,
		u.ID, u.UserType, u.CompanyID, u.LoginID, u.PasswordHash, roleIDs)
	if err != nil {
		log.Printf("users: failed to save user %s: %v", u.ID, err)
	}
	return err
}

// FindByLoginID fetches a user by login id. Returns (nil, nil) when no
// row matches.
func (r *UserRepo) FindByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	return r.findOne(ctx,
		"SELECT id, user_type, company_id, login_id, password_hash, role_ids FROM users WHERE login_id=? LIMIT 1",
		loginID)
}

// FindByID fetches a user by id. Returns (nil, nil) when no row matches.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx,
		"SELECT id, user_type, company_id, login_id, password_hash, role_ids FROM users WHERE id=? LIMIT 1",
		id)
}

func (r *UserRepo) findOne(ctx context.Context, query, arg string) (*model.User, error) {
	var (
		u       model.User
		roleIDs []byte
	)
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.UserType, &u.CompanyID, &u.LoginID, &u.PasswordHash, &roleIDs)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("users: query failed: %v", err)
		return nil, err
	}
	if err := json.Unmarshal(roleIDs, &u.RoleIDs); err != nil {
		log.Printf("users: failed to decode role ids for user %s: %v", u.ID, err)
		return nil, err
	}
	return &u, nil
}
