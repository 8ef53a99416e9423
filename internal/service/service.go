package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/db"
	"employee-tracker/internal/models"
)

const (
	// MaxNameLength bounds every stored name and title.
	MaxNameLength = 30

	// MaxSalary is exclusive; role.salary is decimal(12,2).
	MaxSalary = 1e10
)

// DirectoryService implements Directory on top of gorm. It holds no state
// besides the connection; every call reads the hierarchy fresh.
type DirectoryService struct {
	db *gorm.DB
}

var _ Directory = (*DirectoryService)(nil)

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

func (s *DirectoryService) ensureDepartmentExists(ctx context.Context, departmentID uint) error {
	return ensureExists(ctx, s.db, &models.Department{}, departmentID, "department not found")
}

func (s *DirectoryService) ensureRoleExists(ctx context.Context, roleID uint) error {
	return ensureExists(ctx, s.db, &models.Role{}, roleID, "role not found")
}

func (s *DirectoryService) ensureEmployeeExists(ctx context.Context, employeeID uint) error {
	return ensureExists(ctx, s.db, &models.Employee{}, employeeID, "employee not found")
}

func ensureExists(ctx context.Context, tx *gorm.DB, model any, id uint, notFound string) error {
	var count int64
	if err := tx.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check existence: %w", err)
	}
	if count == 0 {
		return apperror.New(apperror.CodeNotFound, notFound)
	}
	return nil
}

func normalizeRequiredString(raw string, field string) (string, error) {
	value := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(value)
	if length < 1 || length > MaxNameLength {
		return "", apperror.Newf(apperror.CodeValidation, "%s length must be in range 1..%d", field, MaxNameLength)
	}
	return value, nil
}

func validateSalary(salary float64) error {
	if !(salary > 0) || math.IsInf(salary, 0) {
		return apperror.New(apperror.CodeValidation, "salary must be a positive number")
	}
	if salary >= MaxSalary {
		return apperror.New(apperror.CodeValidation, "salary must be less than 10000000000")
	}
	return nil
}

func notFoundOr(err error, message string, wrap string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.CodeNotFound, message)
	}
	return fmt.Errorf("%s: %w", wrap, err)
}

func mapDatabaseError(err error) error {
	return db.MapError(err)
}
