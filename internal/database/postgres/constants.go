package postgres

// PostgreSQL error codes
const (
	// PgErrUniqueViolation is the SQLSTATE for unique constraint violations
	PgErrUniqueViolation = "23505"
)
