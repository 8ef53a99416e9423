package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/db"
	"employee-tracker/internal/models"
)

func (s *DirectoryService) ListEmployees(ctx context.Context) ([]EmployeeDTO, error) {
	var employees []EmployeeDTO
	if err := s.db.WithContext(ctx).
		Table("employee AS e").
		Select("e.id, e.first_name, e.last_name, e.role_id, r.title, e.manager_id").
		Joins("JOIN role AS r ON r.id = e.role_id").
		Order("e.first_name ASC, e.last_name ASC, e.id ASC").
		Scan(&employees).Error; err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	return employees, nil
}

// EmployeeImpacts lists every employee with the number of direct reports.
func (s *DirectoryService) EmployeeImpacts(ctx context.Context) ([]EmployeeImpact, error) {
	var impacts []EmployeeImpact
	if err := s.db.WithContext(ctx).
		Table("employee AS e").
		Select("e.id, e.first_name, e.last_name, COUNT(m.id) AS report_count").
		Joins("LEFT JOIN employee AS m ON m.manager_id = e.id").
		Group("e.id, e.first_name, e.last_name").
		Order("e.first_name ASC, e.last_name ASC, e.id ASC").
		Scan(&impacts).Error; err != nil {
		return nil, fmt.Errorf("load employee impacts: %w", err)
	}
	return impacts, nil
}

func (s *DirectoryService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (EmployeeDTO, error) {
	firstName, err := normalizeRequiredString(input.FirstName, "first name")
	if err != nil {
		return EmployeeDTO{}, err
	}
	lastName, err := normalizeRequiredString(input.LastName, "last name")
	if err != nil {
		return EmployeeDTO{}, err
	}

	role, err := loadRole(s.db.WithContext(ctx), input.RoleID)
	if err != nil {
		return EmployeeDTO{}, err
	}
	if input.ManagerID != nil {
		if err := ensureExists(ctx, s.db, &models.Employee{}, *input.ManagerID, "manager not found"); err != nil {
			return EmployeeDTO{}, err
		}
	}

	employee := models.Employee{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    role.ID,
		ManagerID: input.ManagerID,
	}
	if err := s.db.WithContext(ctx).Omit("Role", "Manager").Create(&employee).Error; err != nil {
		return EmployeeDTO{}, mapDatabaseError(err)
	}

	return employeeToDTO(employee, role.Title), nil
}

// CreateEmployeeByName resolves the manager, department and role by name and
// inserts the employee in one transaction, so a failure leaves no new
// department or role behind.
func (s *DirectoryService) CreateEmployeeByName(ctx context.Context, input CreateEmployeeByNameInput) (EmployeeDTO, error) {
	firstName, err := normalizeRequiredString(input.FirstName, "first name")
	if err != nil {
		return EmployeeDTO{}, err
	}
	lastName, err := normalizeRequiredString(input.LastName, "last name")
	if err != nil {
		return EmployeeDTO{}, err
	}

	var created EmployeeDTO
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		managerID, err := resolveManagerReference(tx, input.ManagerName)
		if err != nil {
			return err
		}
		departmentID, err := resolveOrCreateDepartment(tx, input.DepartmentName)
		if err != nil {
			return err
		}
		roleID, err := resolveOrCreateRole(tx, input.RoleTitle, input.Salary, departmentID)
		if err != nil {
			return err
		}

		employee := models.Employee{
			FirstName: firstName,
			LastName:  lastName,
			RoleID:    roleID,
			ManagerID: managerID,
		}
		if err := tx.Omit("Role", "Manager").Create(&employee).Error; err != nil {
			return mapDatabaseError(err)
		}

		role, err := loadRole(tx, roleID)
		if err != nil {
			return err
		}
		created = employeeToDTO(employee, role.Title)
		return nil
	})
	if err != nil {
		return EmployeeDTO{}, err
	}
	return created, nil
}

func (s *DirectoryService) UpdateEmployeeRole(ctx context.Context, employeeID uint, roleID uint) error {
	if err := s.ensureEmployeeExists(ctx, employeeID); err != nil {
		return err
	}
	if err := s.ensureRoleExists(ctx, roleID); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("role_id", roleID).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

// UpdateEmployeeManager sets or clears (nil) the manager of an employee. A
// manager that is the employee or one of its reports is rejected.
func (s *DirectoryService) UpdateEmployeeManager(ctx context.Context, employeeID uint, managerID *uint) error {
	if err := s.ensureEmployeeExists(ctx, employeeID); err != nil {
		return err
	}

	if managerID != nil {
		if *managerID == employeeID {
			return apperror.New(apperror.CodeConflict, "an employee cannot manage themselves")
		}
		if err := ensureExists(ctx, s.db, &models.Employee{}, *managerID, "manager not found"); err != nil {
			return err
		}
		willCycle, err := wouldCreateCycle(s.db.WithContext(ctx), employeeID, *managerID)
		if err != nil {
			return err
		}
		if willCycle {
			return apperror.New(apperror.CodeConflict, "manager cycle detected")
		}
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("manager_id", managerID).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

// DeleteEmployee detaches the employee's direct reports and deletes the
// employee atomically.
func (s *DirectoryService) DeleteEmployee(ctx context.Context, employeeID uint) (DeleteResult, error) {
	if err := s.ensureEmployeeExists(ctx, employeeID); err != nil {
		return DeleteResult{}, err
	}

	results, err := db.Transaction(ctx, s.db,
		db.Stmt("UPDATE employee SET manager_id = NULL WHERE manager_id = ?", employeeID),
		db.Stmt("DELETE FROM employee WHERE id = ?", employeeID),
	)
	if err != nil {
		return DeleteResult{}, err
	}

	return DeleteResult{Reassigned: results[0].RowsAffected, Deleted: results[1].RowsAffected}, nil
}

func employeeToDTO(employee models.Employee, title string) EmployeeDTO {
	return EmployeeDTO{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		RoleID:    employee.RoleID,
		Title:     title,
		ManagerID: employee.ManagerID,
	}
}
