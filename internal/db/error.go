package db

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"employee-tracker/internal/apperror"
)

// MapError classifies driver errors into apperror codes. Unknown errors are
// returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case IsDuplicateKeyErr(err):
		return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
	case IsForeignKeyErr(err):
		return apperror.New(apperror.CodeValidation, "invalid foreign key reference")
	}
	return err
}

func IsDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	// glebarez/sqlite does not expose a typed error.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func IsForeignKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1451 || myErr.Number == 1452
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
