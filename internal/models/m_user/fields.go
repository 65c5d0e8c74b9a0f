package m_user

// Column names of the users table.
const (
	TableName = "users"

	UserID       = "user_id"
	Email        = "email"
	PasswordHash = "password_hash"
	Name         = "name"
	Role         = "role"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"

	// EmailIndex is the unique index on email.
	EmailIndex = "idx_users_email"
)

// Columns lists every column in table order.
func Columns() []string {
	return []string{UserID, Email, PasswordHash, Name, Role, CreatedAt, UpdatedAt}
}
