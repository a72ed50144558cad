package model

// UserTypeAdmin is the user_type value for system administrator accounts.
const UserTypeAdmin = "ADMIN"

// User represents an account record as stored in the `users` table.
// Passwords are never stored in plaintext; PasswordHash holds a bcrypt
// digest. RoleIDs references rows in the `roles` table and is persisted
// as a JSON array column. Accounts are never physically deleted.
//
// Fields:
//  ID           – primary key identifier (UUID string).
//  UserType     – account category (e.g. ADMIN).
//  CompanyID    – optional tenant association (nullable).
//  LoginID      – unique login identifier.
//  PasswordHash – bcrypt hashed password.
//  RoleIDs      – identifiers of the roles granted to this user.
type User struct {
	ID           string   // users.id
	UserType     string   // users.user_type
	CompanyID    *string  // users.company_id (nullable)
	LoginID      string   // users.login_id
	PasswordHash string   // users.password_hash
	RoleIDs      []string // users.role_ids (JSON array)
}
