package m_user

import "cloud.google.com/go/spanner"

// Model builds mutations for the users table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a user.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{data.UserID, data.Email, data.PasswordHash, data.Name, data.Role, spanner.CommitTimestamp, spanner.CommitTimestamp},
	)
}

// PasswordMut replaces a user's password hash.
func (m *Model) PasswordMut(userID, passwordHash string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{UserID, PasswordHash, UpdatedAt},
		[]interface{}{userID, passwordHash, spanner.CommitTimestamp},
	)
}
