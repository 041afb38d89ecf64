package sink

import (
	"database/sql"
	"fmt"
	"strings"
)

type OracleDialect struct{}

func (d *OracleDialect) CreateTableQuery(table string) string {
	// Oracle before 23c has no IF NOT EXISTS; ORA-00955 means the table is already there.
	ddl := fmt.Sprintf(`CREATE TABLE %s (
    id VARCHAR2(36) NOT NULL PRIMARY KEY,
    dialect NVARCHAR2(64) NOT NULL,
    name NVARCHAR2(128) NOT NULL,
    syllables NUMBER(2) NOT NULL,
    CONSTRAINT %s UNIQUE (dialect, name)
)`, table, constraintName("uq", table))
	return fmt.Sprintf(`BEGIN
    EXECUTE IMMEDIATE '%s';
EXCEPTION
    WHEN OTHERS THEN
        IF SQLCODE != -955 THEN
            RAISE;
        END IF;
END;`, strings.ReplaceAll(ddl, "'", "''"))
}

func (d *OracleDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", table)
}

func (d *OracleDialect) BeforePump(tx *sql.Tx) error {
	return nil
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *OracleDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
}

func (d *OracleDialect) Placeholder(index int) string {
	// Oracle uses :1, :2, etc. (1-based index)
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) GetLimitRowQuery(query string, limit int) string {
	return fmt.Sprintf("SELECT * FROM (%s) WHERE ROWNUM <= %d", query, limit)
}
