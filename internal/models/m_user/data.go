package m_user

import "time"

// Data is one row of the users table.
type Data struct {
	UserID       string    `spanner:"user_id"`
	Email        string    `spanner:"email"`
	PasswordHash string    `spanner:"password_hash"`
	Name         string    `spanner:"name"`
	Role         string    `spanner:"role"`
	CreatedAt    time.Time `spanner:"created_at"`
	UpdatedAt    time.Time `spanner:"updated_at"`
}
