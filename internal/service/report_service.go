package service

import (
	"context"
	"fmt"
)

type employeeReportRow struct {
	ID               uint
	FirstName        string
	LastName         string
	Title            string
	Salary           float64
	Department       string
	ManagerFirstName *string
	ManagerLastName  *string
}

// EmployeeReport returns every employee with role, department and manager,
// ordered by id.
func (s *DirectoryService) EmployeeReport(ctx context.Context) ([]EmployeeRow, error) {
	var rows []employeeReportRow
	if err := s.db.WithContext(ctx).
		Table("employee AS e").
		Select("e.id, e.first_name, e.last_name, r.title, r.salary, d.name AS department, " +
			"m.first_name AS manager_first_name, m.last_name AS manager_last_name").
		Joins("JOIN role AS r ON r.id = e.role_id").
		Joins("JOIN department AS d ON d.id = r.department_id").
		Joins("LEFT JOIN employee AS m ON m.id = e.manager_id").
		Order("e.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load employee report: %w", err)
	}

	result := make([]EmployeeRow, 0, len(rows))
	for _, row := range rows {
		var manager string
		if row.ManagerFirstName != nil && row.ManagerLastName != nil {
			manager = *row.ManagerFirstName + " " + *row.ManagerLastName
		}
		result = append(result, EmployeeRow{
			ID:         row.ID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Title:      row.Title,
			Salary:     row.Salary,
			Department: row.Department,
			Manager:    manager,
		})
	}
	return result, nil
}

func (s *DirectoryService) DepartmentReport(ctx context.Context) ([]DepartmentRow, error) {
	impacts, err := s.DepartmentImpacts(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]DepartmentRow, 0, len(impacts))
	for _, impact := range impacts {
		rows = append(rows, DepartmentRow(impact))
	}
	return rows, nil
}

func (s *DirectoryService) RoleReport(ctx context.Context) ([]RoleRow, error) {
	var rows []RoleRow
	if err := s.db.WithContext(ctx).
		Table("role AS r").
		Select("r.id, r.title, r.salary, d.name AS department, COUNT(e.id) AS employee_count").
		Joins("JOIN department AS d ON d.id = r.department_id").
		Joins("LEFT JOIN employee AS e ON e.role_id = r.id").
		Group("r.id, r.title, r.salary, d.name").
		Order("d.name ASC, r.title ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load role report: %w", err)
	}
	return rows, nil
}

// DepartmentBudgets sums the salaries of the employees in each department.
func (s *DirectoryService) DepartmentBudgets(ctx context.Context) ([]DepartmentBudget, error) {
	var budgets []DepartmentBudget
	if err := s.db.WithContext(ctx).
		Table("department AS d").
		Select("d.id, d.name, COUNT(e.id) AS headcount, " +
			"COALESCE(SUM(CASE WHEN e.id IS NULL THEN 0 ELSE r.salary END), 0) AS budget").
		Joins("LEFT JOIN role AS r ON r.department_id = d.id").
		Joins("LEFT JOIN employee AS e ON e.role_id = r.id").
		Group("d.id, d.name").
		Order("d.name ASC").
		Scan(&budgets).Error; err != nil {
		return nil, fmt.Errorf("load department budgets: %w", err)
	}
	return budgets, nil
}
