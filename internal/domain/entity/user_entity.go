package entity

// User is the identity aggregate. Favorites are owned by a user but live in
// their own table.
//
// Passwords are stored as bcrypt hashes in Password field
type User struct {
	ID       int64  `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	IsActive bool   `db:"is_active"`
}
