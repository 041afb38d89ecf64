package sink

import (
	"database/sql"
	"fmt"
	"log"
)

// Producer returns the next row to insert.
type Producer func() (Row, error)

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

type fillStats struct {
	Inserted int
	Attempts int
	Failed   int
	LastErr  error
}

// EnsureTable creates the names table when it does not exist yet.
func EnsureTable(db *sql.DB, d Dialect, table string) error {
	if err := ValidateTable(table); err != nil {
		return err
	}
	if _, err := db.Exec(d.CreateTableQuery(table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// Pump inserts count unique names produced by next into table in one
// transaction. Attempts are capped at count*10 so a dialect that keeps
// repeating itself cannot loop forever.
func Pump(db *sql.DB, d Dialect, table string, count int, next Producer, onProgress func()) (PumpResult, error) {
	if err := ValidateTable(table); err != nil {
		return PumpResult{}, err
	}
	if next == nil {
		return PumpResult{}, ErrNilProducer
	}

	initialCount, err := countRows(db, d, table)
	if err != nil {
		return PumpResult{}, err
	}

	tx, err := db.Begin()
	if err != nil {
		return PumpResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	if err := d.BeforePump(tx); err != nil {
		log.Printf("Warning: BeforePump hook failed for %s: %v\n", table, err)
	}

	stats := fill(tx, d.InsertQuery(table, Columns), count, next, onProgress)

	if err := tx.Commit(); err != nil {
		return PumpResult{}, fmt.Errorf("failed to commit pump transaction: %w", err)
	}
	tx = nil

	finalCount, err := countRows(db, d, table)
	if err != nil {
		return PumpResult{}, err
	}

	return report(table, count, finalCount-initialCount, stats), nil
}

// fill produces and inserts rows until count rows are inserted or the attempt
// budget runs out. Rows repeating a name already tried in this run are skipped.
func fill(ex execer, query string, count int, next Producer, onProgress func()) fillStats {
	var stats fillStats
	used := make(map[string]bool)

	for stats.Inserted < count && stats.Attempts < count*10 {
		stats.Attempts++

		row, err := next()
		if err != nil {
			stats.Failed++
			stats.LastErr = err
			continue
		}

		if used[row.key()] {
			continue
		}
		used[row.key()] = true

		res, err := ex.Exec(query, row.values()...)
		if err != nil {
			stats.Failed++
			stats.LastErr = err
			if stats.Failed <= 3 {
				// Log first 3 errors
				log.Printf("[DEBUG] attempt %d: %v\nQuery: %s\n", stats.Attempts, err, query)
			}
			continue
		}
		// INSERT IGNORE / ON CONFLICT DO NOTHING report zero rows for names stored earlier.
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			continue
		}

		stats.Inserted++
		if onProgress != nil {
			onProgress()
		}
	}
	return stats
}

func report(table string, target, actual int, stats fillStats) PumpResult {
	status := "OK"
	var errMsg string
	if actual < target {
		status = "MISSING DATA"
		switch {
		case stats.Inserted == 0 && stats.LastErr != nil:
			errMsg = fmt.Sprintf("Failed to insert any rows: %v", stats.LastErr)
		case stats.Inserted == 0:
			errMsg = "Failed to insert any rows. The dialect may be too small for the requested count."
		default:
			errMsg = fmt.Sprintf("Only inserted %d out of %d after %d attempts.", actual, target, stats.Attempts)
		}
	}

	return PumpResult{
		TableName: table,
		Target:    target,
		Actual:    actual,
		Attempts:  stats.Attempts,
		Status:    status,
		ErrorMsg:  errMsg,
	}
}

// Verify checks the actual row count after pumping.
func Verify(db *sql.DB, d Dialect, res PumpResult) PumpResult {
	currentCount, err := countRows(db, d, res.TableName)

	status := "VERIFIED_OK"
	if err != nil {
		status = fmt.Sprintf("VERIFY_FAIL: %v", err)
	} else if currentCount < res.Target {
		status = fmt.Sprintf("PARTIAL: %d/%d", currentCount, res.Target)
	}

	res.Status = status
	return res
}

// Sample returns up to limit stored names.
func Sample(db *sql.DB, d Dialect, table string, limit int) ([]string, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	query := d.GetLimitRowQuery(fmt.Sprintf("SELECT name FROM %s", table), limit)
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to sample %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating names: %w", err)
	}
	return names, nil
}

// Clean truncates the names table.
func Clean(db *sql.DB, d Dialect, table string) error {
	if err := ValidateTable(table); err != nil {
		return err
	}
	if _, err := db.Exec(d.TruncateQuery(table)); err != nil {
		return fmt.Errorf("failed to clean %s: %w", table, err)
	}
	return nil
}

func countRows(db *sql.DB, d Dialect, table string) (int, error) {
	var n int
	if err := db.QueryRow(d.CountQuery(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}
