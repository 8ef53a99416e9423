package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/models"
)

// NoManager is the selection that maps to an employee without a manager.
const NoManager = "None"

// ResolveOrCreateDepartment returns the id of the department named name,
// inserting it first when no department has that exact name.
func (s *DirectoryService) ResolveOrCreateDepartment(ctx context.Context, name string) (uint, error) {
	return resolveOrCreateDepartment(s.db.WithContext(ctx), name)
}

// ResolveOrCreateRole returns the id of the role with title in departmentID,
// inserting it with salary when missing. An existing role keeps its salary.
func (s *DirectoryService) ResolveOrCreateRole(ctx context.Context, title string, salary float64, departmentID uint) (uint, error) {
	return resolveOrCreateRole(s.db.WithContext(ctx), title, salary, departmentID)
}

// ResolveManagerReference maps "None" to nil and "First Last" to the id of the
// first employee with that name, by ascending id.
func (s *DirectoryService) ResolveManagerReference(ctx context.Context, selection string) (*uint, error) {
	return resolveManagerReference(s.db.WithContext(ctx), selection)
}

func resolveOrCreateDepartment(tx *gorm.DB, rawName string) (uint, error) {
	name, err := normalizeRequiredString(rawName, "department name")
	if err != nil {
		return 0, err
	}

	var department models.Department
	err = tx.Where("name = ?", name).Order("id").First(&department).Error
	switch {
	case err == nil:
		return department.ID, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, fmt.Errorf("look up department: %w", err)
	}

	department = models.Department{Name: name}
	if err := tx.Create(&department).Error; err != nil {
		return 0, mapDatabaseError(err)
	}
	return department.ID, nil
}

func resolveOrCreateRole(tx *gorm.DB, rawTitle string, salary float64, departmentID uint) (uint, error) {
	title, err := normalizeRequiredString(rawTitle, "role title")
	if err != nil {
		return 0, err
	}

	var role models.Role
	err = tx.Where("title = ? AND department_id = ?", title, departmentID).Order("id").First(&role).Error
	switch {
	case err == nil:
		return role.ID, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, fmt.Errorf("look up role: %w", err)
	}

	if err := validateSalary(salary); err != nil {
		return 0, err
	}
	if err := ensureExists(tx.Statement.Context, tx, &models.Department{}, departmentID, "department not found"); err != nil {
		return 0, err
	}

	role = models.Role{Title: title, Salary: salary, DepartmentID: departmentID}
	if err := tx.Create(&role).Error; err != nil {
		return 0, mapDatabaseError(err)
	}
	return role.ID, nil
}

func resolveManagerReference(tx *gorm.DB, selection string) (*uint, error) {
	value := strings.TrimSpace(selection)
	if value == "" || strings.EqualFold(value, NoManager) {
		return nil, nil
	}

	firstName, lastName, ok := strings.Cut(value, " ")
	lastName = strings.TrimSpace(lastName)
	if !ok || lastName == "" {
		return nil, apperror.Newf(apperror.CodeValidation, "manager must be \"First Last\" or %s", NoManager)
	}

	var manager models.Employee
	err := tx.Select("id").
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Order("id").
		First(&manager).Error
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("manager %q not found", value), "look up manager")
	}
	return &manager.ID, nil
}

// wouldCreateCycle reports whether making managerID the manager of employeeID
// closes a loop in the reporting chain.
func wouldCreateCycle(tx *gorm.DB, employeeID uint, managerID uint) (bool, error) {
	visited := map[uint]bool{}
	currentID := &managerID
	for currentID != nil {
		if *currentID == employeeID {
			return true, nil
		}
		if visited[*currentID] {
			return false, nil
		}
		visited[*currentID] = true

		var employee models.Employee
		if err := tx.Select("id", "manager_id").First(&employee, *currentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("load manager chain: %w", err)
		}
		currentID = employee.ManagerID
	}

	return false, nil
}
