package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Statement is a parameterized SQL statement using "?" placeholders.
type Statement struct {
	SQL  string
	Args []any
}

func Stmt(sql string, args ...any) Statement {
	return Statement{SQL: sql, Args: args}
}

type Result struct {
	RowsAffected int64
}

// Transaction runs statements in order inside a single database transaction.
// A failing statement rolls back every statement before it.
func Transaction(ctx context.Context, database *gorm.DB, statements ...Statement) ([]Result, error) {
	results := make([]Result, 0, len(statements))

	err := database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, statement := range statements {
			res := tx.Exec(statement.SQL, statement.Args...)
			if res.Error != nil {
				return fmt.Errorf("statement %d: %w", i+1, MapError(res.Error))
			}
			results = append(results, Result{RowsAffected: res.RowsAffected})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
