package service

import (
	"context"
	"errors"
	"fmt"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/db"
	"employee-tracker/internal/models"
)

func (s *DirectoryService) ListDepartments(ctx context.Context) ([]DepartmentDTO, error) {
	var departments []models.Department
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}
	return departmentsToDTO(departments), nil
}

func (s *DirectoryService) AlternativeDepartments(ctx context.Context, excludeID uint) ([]DepartmentDTO, error) {
	var departments []models.Department
	if err := s.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("name ASC").
		Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("load alternative departments: %w", err)
	}
	return departmentsToDTO(departments), nil
}

// DepartmentImpacts lists every department with the number of roles in it.
func (s *DirectoryService) DepartmentImpacts(ctx context.Context) ([]DepartmentImpact, error) {
	var impacts []DepartmentImpact
	if err := s.db.WithContext(ctx).
		Table("department AS d").
		Select("d.id, d.name, COUNT(r.id) AS role_count").
		Joins("LEFT JOIN role AS r ON r.department_id = d.id").
		Group("d.id, d.name").
		Order("d.name ASC").
		Scan(&impacts).Error; err != nil {
		return nil, fmt.Errorf("load department impacts: %w", err)
	}
	return impacts, nil
}

func (s *DirectoryService) CreateDepartment(ctx context.Context, rawName string) (DepartmentDTO, error) {
	name, err := normalizeRequiredString(rawName, "department name")
	if err != nil {
		return DepartmentDTO{}, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Department{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return DepartmentDTO{}, fmt.Errorf("check department uniqueness: %w", err)
	}
	if count > 0 {
		return DepartmentDTO{}, apperror.Newf(apperror.CodeConflict, "Department '%s' already exists", name)
	}

	department := models.Department{Name: name}
	if err := s.db.WithContext(ctx).Create(&department).Error; err != nil {
		return DepartmentDTO{}, mapDatabaseError(err)
	}
	return departmentToDTO(department), nil
}

func (s *DirectoryService) DeleteDepartment(ctx context.Context, departmentID uint, mode DeleteMode, reassignToDepartmentID *uint) (DeleteResult, error) {
	if err := s.ensureDepartmentExists(ctx, departmentID); err != nil {
		return DeleteResult{}, err
	}

	var roleCount int64
	if err := s.db.WithContext(ctx).Model(&models.Role{}).Where("department_id = ?", departmentID).Count(&roleCount).Error; err != nil {
		return DeleteResult{}, fmt.Errorf("count department roles: %w", err)
	}

	switch mode {
	case DeleteModeRestrict:
		if roleCount > 0 {
			return DeleteResult{}, apperror.Newf(apperror.CodeConflict, "department still has %d roles", roleCount)
		}
		results, err := db.Transaction(ctx, s.db,
			db.Stmt("DELETE FROM department WHERE id = ?", departmentID),
		)
		if err != nil {
			return DeleteResult{}, err
		}
		return DeleteResult{Deleted: results[0].RowsAffected}, nil

	case DeleteModeReassign:
		if reassignToDepartmentID == nil {
			return DeleteResult{}, apperror.New(apperror.CodeValidation, "a department to reassign roles to is required")
		}
		if *reassignToDepartmentID == departmentID {
			return DeleteResult{}, apperror.New(apperror.CodeValidation, "roles cannot be reassigned to the department being deleted")
		}
		if err := s.ensureDepartmentExists(ctx, *reassignToDepartmentID); err != nil {
			return DeleteResult{}, err
		}

		results, err := db.Transaction(ctx, s.db,
			db.Stmt("UPDATE role SET department_id = ? WHERE department_id = ?", *reassignToDepartmentID, departmentID),
			db.Stmt("DELETE FROM department WHERE id = ?", departmentID),
		)
		if err != nil {
			if apperror.GetCode(err) == apperror.CodeConflict {
				return DeleteResult{}, apperror.New(apperror.CodeConflict, "the target department already has a role with the same title")
			}
			return DeleteResult{}, err
		}
		return DeleteResult{Reassigned: results[0].RowsAffected, Deleted: results[1].RowsAffected}, nil

	default:
		return DeleteResult{}, errors.New("delete department: unknown mode " + string(mode))
	}
}

func departmentToDTO(department models.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:   department.ID,
		Name: department.Name,
	}
}

func departmentsToDTO(departments []models.Department) []DepartmentDTO {
	result := make([]DepartmentDTO, 0, len(departments))
	for _, department := range departments {
		result = append(result, departmentToDTO(department))
	}
	return result
}
