package workflow

import (
	"context"

	"employee-tracker/internal/report"
)

const (
	noEmployees   = "No employees found in the database."
	noDepartments = "No departments found in the database."
	noRoles       = "No roles found in the database."
)

func (o *Orchestrator) ViewEmployees(ctx context.Context) error {
	rows, err := o.dir.EmployeeReport(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		o.println(noEmployees)
		return nil
	}
	report.Employees(o.out, rows)
	return nil
}

func (o *Orchestrator) ViewEmployeesByManager(ctx context.Context) error {
	rows, err := o.dir.EmployeeReport(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		o.println(noEmployees)
		return nil
	}
	report.EmployeesByManager(o.out, rows)
	return nil
}

func (o *Orchestrator) ViewEmployeesByDepartment(ctx context.Context) error {
	rows, err := o.dir.EmployeeReport(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		o.println(noEmployees)
		return nil
	}
	report.EmployeesByDepartment(o.out, rows)
	return nil
}

func (o *Orchestrator) ViewDepartments(ctx context.Context) error {
	rows, err := o.dir.DepartmentReport(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		o.println(noDepartments)
		return nil
	}
	report.Departments(o.out, rows)
	return nil
}

func (o *Orchestrator) ViewRoles(ctx context.Context) error {
	rows, err := o.dir.RoleReport(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		o.println(noRoles)
		return nil
	}
	report.Roles(o.out, rows)
	return nil
}

func (o *Orchestrator) ViewBudgets(ctx context.Context) error {
	rows, err := o.dir.DepartmentBudgets(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		o.println(noDepartments)
		return nil
	}
	report.Budgets(o.out, rows)
	return nil
}
