package sink

import (
	"fmt"
	"regexp"
	"strings"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidateTable rejects table names that cannot be spliced into SQL safely.
func ValidateTable(table string) error {
	if !tableName.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return nil
}

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the number of placeholders needed and a function that returns the placeholder for a given index.
// It returns a comma-separated string of the generated placeholders.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// constraintName derives a constraint identifier from a possibly schema-qualified table.
func constraintName(prefix, table string) string {
	return prefix + "_" + strings.ToLower(strings.ReplaceAll(table, ".", "_"))
}
