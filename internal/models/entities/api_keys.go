package entities

// ApiKey is scanned straight from the api_keys table via sqlx.
type ApiKey struct {
	ID     string `db:"id"`
	Status bool   `db:"status"`
}
