package model

// Role represents a named bundle of permissions as stored in the `roles`
// table. Roles are read-only from this service's perspective; they are
// seeded and managed out of band.
//
// Fields:
//  ID          – primary key identifier (UUID string).
//  Name        – unique display name (e.g. SUPER_ADMIN).
//  Permissions – capability strings granted by this role (JSON array).
type Role struct {
	ID          string   // roles.id
	Name        string   // roles.name
	Permissions []string // roles.permissions (JSON array)
}
