package constants

// Raw queries for the sqlx paths (API keys live outside the ORM models).
const (
	GetStatusByApiKey = `SELECT id, status FROM api_keys WHERE id = $1`
)
