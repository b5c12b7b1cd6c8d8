// AngelaMos | 2026
// update.go

package core

import (
	"context"
	"fmt"
	"strings"
)

// Assignments collects column writes for a partial UPDATE.
type Assignments struct {
	columns []string
	args    []any
}

// Set records column = *v when v is non-nil.
func Set[T any](a *Assignments, column string, v *T) {
	if v == nil {
		return
	}
	a.columns = append(a.columns, column+" = ?")
	a.args = append(a.args, *v)
}

func (a *Assignments) Empty() bool {
	return len(a.columns) == 0
}

// UpdateByID applies the assignments to one row of table. A missing row
// yields ErrNotFound.
func UpdateByID(
	ctx context.Context,
	db DBTX,
	table string,
	id int64,
	a *Assignments,
) error {
	if a.Empty() {
		return nil
	}

	query := db.Rebind(fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ?",
		table,
		strings.Join(a.columns, ", "),
	))
	args := append(append([]any{}, a.args...), id)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, ClassifyDBError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}

	if rows == 0 {
		return fmt.Errorf("update %s: %w", table, ErrNotFound)
	}

	return nil
}
