package sink

import (
	"database/sql"
	"fmt"
	"strings"
)

type MysqlDialect struct{}

func (d *MysqlDialect) CreateTableQuery(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id CHAR(36) NOT NULL PRIMARY KEY,
    dialect VARCHAR(64) NOT NULL,
    name VARCHAR(128) NOT NULL,
    syllables INT NOT NULL,
    UNIQUE KEY %s (dialect, name)
) DEFAULT CHARSET = utf8mb4`, table, constraintName("uq", table))
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", table)
}

func (d *MysqlDialect) BeforePump(tx *sql.Tx) error {
	// Cyrillic dialects need a 4-byte-safe connection charset.
	_, err := tx.Exec("SET NAMES utf8mb4")
	return err
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT IGNORE INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *MysqlDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) GetLimitRowQuery(query string, limit int) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}
