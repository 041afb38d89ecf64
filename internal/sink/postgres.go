package sink

import (
	"database/sql"
	"fmt"
	"strings"
)

type PostgresDialect struct{}

func (d *PostgresDialect) CreateTableQuery(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id UUID PRIMARY KEY,
    dialect VARCHAR(64) NOT NULL,
    name VARCHAR(128) NOT NULL,
    syllables INTEGER NOT NULL,
    CONSTRAINT %s UNIQUE (dialect, name)
)`, table, constraintName("uq", table))
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", table)
}

func (d *PostgresDialect) BeforePump(tx *sql.Tx) error {
	_, err := tx.Exec("SET LOCAL client_encoding = 'UTF8'")
	return err
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	// Generate placeholders ($1, $2, ...)
	vals := GeneratePlaceholders(len(cols), d.Placeholder)

	// Names already stored by an earlier run are skipped, not failed.
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING", table, strings.Join(cols, ", "), vals)
}

func (d *PostgresDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) GetLimitRowQuery(query string, limit int) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}
