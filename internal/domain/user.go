package domain

type User struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Hash  string `db:"password_hash"`
}

// Session binds an opaque bearer token to the user it was issued for.
// The user's name is denormalized onto the row so login responses and
// statements don't need a join.
type Session struct {
	Token    string `db:"token"`
	UserID   string `db:"user_id"`
	UserName string `db:"user_name"`
}
