package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"strings"

	"github.com/ausawards/admin-api/internal/model"
)

// RoleRepo reads roles from the 'roles' table. Roles are seeded out of
// band; this service never writes them.
type RoleRepo struct{ DB *sql.DB }

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{DB: db} }

// FindByIDs returns the roles matching the given ids. Unknown ids are
// silently absent from the result.
func (r *RoleRepo) FindByIDs(ctx context.Context, ids []string) ([]model.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, permissions FROM roles WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		log.Printf("roles: query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		var (
			role  model.Role
			perms []byte
		)
		if err := rows.Scan(&role.ID, &role.Name, &perms); err != nil {
			log.Printf("roles: scan failed: %v", err)
			return nil, err
		}
		if err := json.Unmarshal(perms, &role.Permissions); err != nil {
			log.Printf("roles: failed to decode permissions for role %s: %v", role.ID, err)
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
