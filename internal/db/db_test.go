package db_test

import (
	"context"
	"errors"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/config"
	"employee-tracker/internal/db"
	"employee-tracker/internal/db/dbtest"
	"employee-tracker/internal/models"
)

func seedDepartments(t *testing.T, database *gorm.DB, names ...string) []models.Department {
	t.Helper()
	departments := make([]models.Department, 0, len(names))
	for _, name := range names {
		department := models.Department{Name: name}
		require.NoError(t, database.Create(&department).Error)
		departments = append(departments, department)
	}
	return departments
}

func TestTransactionCommitsAllStatements(t *testing.T) {
	database := dbtest.Open(t)
	departments := seedDepartments(t, database, "Sales", "Legal")

	results, err := db.Transaction(context.Background(), database,
		db.Stmt("UPDATE department SET name = ? WHERE id = ?", "Marketing", departments[0].ID),
		db.Stmt("DELETE FROM department WHERE id = ?", departments[1].ID),
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.EqualValues(t, 1, results[0].RowsAffected)
	assert.EqualValues(t, 1, results[1].RowsAffected)

	var names []string
	require.NoError(t, database.Model(&models.Department{}).Order("id").Pluck("name", &names).Error)
	assert.Equal(t, []string{"Marketing"}, names)
}

func TestTransactionRollsBackOnFailure(t *testing.T) {
	database := dbtest.Open(t)
	departments := seedDepartments(t, database, "Sales")

	_, err := db.Transaction(context.Background(), database,
		db.Stmt("UPDATE department SET name = ? WHERE id = ?", "Marketing", departments[0].ID),
		db.Stmt("DELETE FROM no_such_table WHERE id = ?", 1),
	)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInternal, apperror.GetCode(err))

	var department models.Department
	require.NoError(t, database.First(&department, departments[0].ID).Error)
	assert.Equal(t, "Sales", department.Name)
}

func TestTransactionMapsUniqueViolation(t *testing.T) {
	database := dbtest.Open(t)
	seedDepartments(t, database, "Sales")

	_, err := db.Transaction(context.Background(), database,
		db.Stmt("INSERT INTO department (name) VALUES (?)", "Sales"),
	)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
}

func TestForeignKeysEnforced(t *testing.T) {
	database := dbtest.Open(t)

	err := database.Create(&models.Role{Title: "Engineer", Salary: 1, DepartmentID: 42}).Error
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(db.MapError(err)))
}

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want apperror.Code
	}{
		{"postgres unique", &pgconn.PgError{Code: "23505"}, apperror.CodeConflict},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, apperror.CodeValidation},
		{"postgres other", &pgconn.PgError{Code: "42601"}, apperror.CodeInternal},
		{"mysql duplicate", &mysqldriver.MySQLError{Number: 1062}, apperror.CodeConflict},
		{"mysql foreign key", &mysqldriver.MySQLError{Number: 1451}, apperror.CodeValidation},
		{"gorm duplicate", gorm.ErrDuplicatedKey, apperror.CodeConflict},
		{"unknown", errors.New("connection refused"), apperror.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apperror.GetCode(db.MapError(tc.err)))
		})
	}
	assert.NoError(t, db.MapError(nil))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "tracker.db?_pragma=foreign_keys(1)", db.SQLiteDSN("tracker.db"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)", db.SQLiteDSN("file:x?mode=memory"))
	assert.Equal(t, "x.db?_pragma=foreign_keys(0)", db.SQLiteDSN("x.db?_pragma=foreign_keys(0)"))
}

func TestDialect(t *testing.T) {
	for _, dbType := range []string{config.DBTypePostgres, config.DBTypeMySQL, config.DBTypeSQLite} {
		dialector, err := db.Dialect(config.DBConfig{Type: dbType, Name: "tracker", Path: "tracker.db"})
		require.NoError(t, err)
		assert.Equal(t, dbType, dialector.Name())
	}

	_, err := db.Dialect(config.DBConfig{Type: "oracle"})
	assert.Error(t, err)
}
