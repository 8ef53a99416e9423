package workflow

import (
	"context"

	"employee-tracker/internal/prompt"
	"employee-tracker/internal/service"
)

func employeeName(e service.EmployeeDTO) string { return e.Name() }

func (o *Orchestrator) UpdateEmployeeRole(ctx context.Context) error {
	employees, err := o.dir.ListEmployees(ctx)
	if err != nil {
		return err
	}
	roles, err := o.dir.ListRoles(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 || len(roles) == 0 {
		return emptyPrerequisite("No employees and/or roles found in the database. Please add employees and roles before updating.")
	}

	employee, err := prompt.Pick(ctx, o.prompter, "Select an employee to update:", employees, employeeName)
	if err != nil {
		return err
	}
	role, err := prompt.Pick(ctx, o.prompter, "Select a new role:", roles, roleLabel)
	if err != nil {
		return err
	}

	if err := o.dir.UpdateEmployeeRole(ctx, employee.ID, role.ID); err != nil {
		return err
	}
	o.println("Employee role updated successfully")
	return nil
}

// UpdateEmployeeManager offers every other employee plus "None", which clears
// the manager.
func (o *Orchestrator) UpdateEmployeeManager(ctx context.Context) error {
	employees, err := o.dir.ListEmployees(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		return emptyPrerequisite("No employees found in the database. Please add employees before updating.")
	}

	employee, err := prompt.Pick(ctx, o.prompter, "Select an employee to update:", employees, employeeName)
	if err != nil {
		return err
	}
	manager, err := prompt.Pick(ctx, o.prompter, "Select a new manager:", managerChoices(employees, employee.ID),
		func(m managerChoice) string { return m.name })
	if err != nil {
		return err
	}

	if err := o.dir.UpdateEmployeeManager(ctx, employee.ID, manager.id); err != nil {
		return err
	}
	o.println("Employee manager updated successfully")
	return nil
}
