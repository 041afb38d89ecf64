package sink

import "database/sql"

// Dialect abstracts database-specific SQL for the names table.
type Dialect interface {
	// Table Management
	CreateTableQuery(table string) string
	TruncateQuery(table string) string

	// Execution Hooks
	BeforePump(tx *sql.Tx) error

	// Query Generation
	InsertQuery(table string, cols []string) string
	CountQuery(table string) string
	Placeholder(index int) string // Returns ?, $1, @p1, :1
	GetLimitRowQuery(query string, limit int) string
}
