package domain

type User struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	Hash      string `db:"password_hash"`
	CreatedAt string `db:"created_at"`
}
