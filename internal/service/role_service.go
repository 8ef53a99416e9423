package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/db"
	"employee-tracker/internal/models"
)

func (s *DirectoryService) ListRoles(ctx context.Context) ([]RoleDTO, error) {
	return s.listRoles(ctx, nil)
}

func (s *DirectoryService) AlternativeRoles(ctx context.Context, excludeID uint) ([]RoleDTO, error) {
	return s.listRoles(ctx, &excludeID)
}

func (s *DirectoryService) listRoles(ctx context.Context, excludeID *uint) ([]RoleDTO, error) {
	query := s.db.WithContext(ctx).
		Table("role AS r").
		Select("r.id, r.title, r.salary, r.department_id, d.name AS department_name").
		Joins("JOIN department AS d ON d.id = r.department_id")
	if excludeID != nil {
		query = query.Where("r.id <> ?", *excludeID)
	}

	var roles []RoleDTO
	if err := query.Order("d.name ASC, r.title ASC").Scan(&roles).Error; err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	return roles, nil
}

// RoleImpacts lists every role with the number of employees holding it.
func (s *DirectoryService) RoleImpacts(ctx context.Context) ([]RoleImpact, error) {
	var impacts []RoleImpact
	if err := s.db.WithContext(ctx).
		Table("role AS r").
		Select("r.id, r.title, d.name AS department_name, COUNT(e.id) AS employee_count").
		Joins("JOIN department AS d ON d.id = r.department_id").
		Joins("LEFT JOIN employee AS e ON e.role_id = r.id").
		Group("r.id, r.title, d.name").
		Order("r.title ASC, d.name ASC").
		Scan(&impacts).Error; err != nil {
		return nil, fmt.Errorf("load role impacts: %w", err)
	}
	return impacts, nil
}

func (s *DirectoryService) CreateRole(ctx context.Context, input CreateRoleInput) (RoleDTO, error) {
	title, err := normalizeRequiredString(input.Title, "role title")
	if err != nil {
		return RoleDTO{}, err
	}
	if err := validateSalary(input.Salary); err != nil {
		return RoleDTO{}, err
	}

	var department models.Department
	if err := s.db.WithContext(ctx).First(&department, input.DepartmentID).Error; err != nil {
		return RoleDTO{}, notFoundOr(err, "department not found", "load department")
	}

	role := models.Role{
		Title:        title,
		Salary:       input.Salary,
		DepartmentID: department.ID,
	}
	if err := s.db.WithContext(ctx).Omit("Department").Create(&role).Error; err != nil {
		err = mapDatabaseError(err)
		if apperror.GetCode(err) == apperror.CodeConflict {
			return RoleDTO{}, apperror.New(apperror.CodeConflict, "Role already exists!")
		}
		return RoleDTO{}, err
	}

	return RoleDTO{
		ID:             role.ID,
		Title:          role.Title,
		Salary:         role.Salary,
		DepartmentID:   department.ID,
		DepartmentName: department.Name,
	}, nil
}

func (s *DirectoryService) DeleteRole(ctx context.Context, roleID uint, mode DeleteMode, reassignToRoleID *uint) (DeleteResult, error) {
	if err := s.ensureRoleExists(ctx, roleID); err != nil {
		return DeleteResult{}, err
	}

	var employeeCount int64
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).Where("role_id = ?", roleID).Count(&employeeCount).Error; err != nil {
		return DeleteResult{}, fmt.Errorf("count role holders: %w", err)
	}

	switch mode {
	case DeleteModeRestrict:
		if employeeCount > 0 {
			return DeleteResult{}, apperror.Newf(apperror.CodeConflict, "role is still assigned to %d employees", employeeCount)
		}
		results, err := db.Transaction(ctx, s.db,
			db.Stmt("DELETE FROM role WHERE id = ?", roleID),
		)
		if err != nil {
			return DeleteResult{}, err
		}
		return DeleteResult{Deleted: results[0].RowsAffected}, nil

	case DeleteModeReassign:
		if reassignToRoleID == nil {
			return DeleteResult{}, apperror.New(apperror.CodeValidation, "a role to reassign employees to is required")
		}
		if *reassignToRoleID == roleID {
			return DeleteResult{}, apperror.New(apperror.CodeValidation, "employees cannot be reassigned to the role being deleted")
		}
		if err := s.ensureRoleExists(ctx, *reassignToRoleID); err != nil {
			return DeleteResult{}, err
		}

		results, err := db.Transaction(ctx, s.db,
			db.Stmt("UPDATE employee SET role_id = ? WHERE role_id = ?", *reassignToRoleID, roleID),
			db.Stmt("DELETE FROM role WHERE id = ?", roleID),
		)
		if err != nil {
			return DeleteResult{}, err
		}
		return DeleteResult{Reassigned: results[0].RowsAffected, Deleted: results[1].RowsAffected}, nil

	default:
		return DeleteResult{}, errors.New("delete role: unknown mode " + string(mode))
	}
}

func loadRole(tx *gorm.DB, roleID uint) (models.Role, error) {
	var role models.Role
	if err := tx.Preload("Department").First(&role, roleID).Error; err != nil {
		return models.Role{}, notFoundOr(err, "role not found", "load role")
	}
	return role, nil
}
