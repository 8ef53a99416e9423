package workflow

import (
	"context"
	"fmt"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/service"
)

const (
	cancelDeletion       = "Cancel deletion"
	reassignToDepartment = "Re-assign to another department"
	reassignToRole       = "Re-assign to another role"
)

func (o *Orchestrator) DeleteEmployee(ctx context.Context) error {
	employees, err := o.dir.EmployeeImpacts(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		return emptyPrerequisite("No employees found in the database. Please add employees before deleting.")
	}

	employee, err := prompt.Pick(ctx, o.prompter, "Select an employee to delete:", employees, employeeImpactLabel)
	if err != nil {
		return err
	}

	if employee.ReportCount > 0 {
		confirmed, err := o.prompter.Confirm(ctx, prompt.ConfirmPrompt{
			Label: fmt.Sprintf("This employee manages %d employees. Are you sure you want to delete this employee?", employee.ReportCount),
		})
		if err != nil {
			return err
		}
		if !confirmed {
			return cancelled("Employee deletion cancelled")
		}
	}

	result, err := o.dir.DeleteEmployee(ctx, employee.ID)
	if err != nil {
		return err
	}
	o.printf("Successfully deleted employee (ID: %d)\n", employee.ID)
	if result.Reassigned > 0 {
		o.printf("Updated %d employees to have no manager\n", result.Reassigned)
	}
	return nil
}

// DeleteRole deletes an unused role directly. A role still held by employees
// is deleted only after its holders move to another role.
func (o *Orchestrator) DeleteRole(ctx context.Context) error {
	roles, err := o.dir.RoleImpacts(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return emptyPrerequisite("No roles found in the database. Please add roles before deleting.")
	}

	role, err := prompt.Pick(ctx, o.prompter, "Select a role to delete:", roles, roleImpactLabel)
	if err != nil {
		return err
	}

	if role.EmployeeCount == 0 {
		if _, err := o.dir.DeleteRole(ctx, role.ID, service.DeleteModeRestrict, nil); err != nil {
			return err
		}
		o.printf("Successfully deleted role (ID: %d)\n", role.ID)
		return nil
	}

	alternatives, err := o.dir.AlternativeRoles(ctx, role.ID)
	if err != nil {
		return err
	}
	if len(alternatives) == 0 {
		return apperror.New(apperror.CodeCascadeBlocked, "Cannot delete - no alternative roles exist")
	}

	action, err := o.prompter.Select(ctx, prompt.SelectPrompt{
		Label:   fmt.Sprintf("This role is assigned to %d employees. Choose action:", role.EmployeeCount),
		Choices: []string{cancelDeletion, reassignToRole},
	})
	if err != nil {
		return err
	}
	if action == 0 {
		return cancelled("Role deletion cancelled")
	}

	target, err := prompt.Pick(ctx, o.prompter, "Select a role to re-assign employees to:", alternatives, roleLabel)
	if err != nil {
		return err
	}

	result, err := o.dir.DeleteRole(ctx, role.ID, service.DeleteModeReassign, &target.ID)
	if err != nil {
		return err
	}
	o.printf("Reassigned %d employees and deleted role (ID: %d)\n", result.Reassigned, role.ID)
	return nil
}

// DeleteDepartment follows DeleteRole: roles of the department move to
// another department before it is deleted.
func (o *Orchestrator) DeleteDepartment(ctx context.Context) error {
	departments, err := o.dir.DepartmentImpacts(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		return emptyPrerequisite("No departments found in the database. Please add departments before deleting.")
	}

	department, err := prompt.Pick(ctx, o.prompter, "Select a department to delete:", departments, departmentImpactLabel)
	if err != nil {
		return err
	}

	if department.RoleCount == 0 {
		if _, err := o.dir.DeleteDepartment(ctx, department.ID, service.DeleteModeRestrict, nil); err != nil {
			return err
		}
		o.printf("Successfully deleted department (ID: %d)\n", department.ID)
		return nil
	}

	alternatives, err := o.dir.AlternativeDepartments(ctx, department.ID)
	if err != nil {
		return err
	}
	if len(alternatives) == 0 {
		return apperror.New(apperror.CodeCascadeBlocked, "Cannot delete - no alternative departments exist")
	}

	action, err := o.prompter.Select(ctx, prompt.SelectPrompt{
		Label:   fmt.Sprintf("This department is assigned to %d roles. Choose action:", department.RoleCount),
		Choices: []string{cancelDeletion, reassignToDepartment},
	})
	if err != nil {
		return err
	}
	if action == 0 {
		return cancelled("Department deletion cancelled")
	}

	target, err := prompt.Pick(ctx, o.prompter, "Select a department to re-assign roles to:", alternatives, func(d service.DepartmentDTO) string {
		return d.Name
	})
	if err != nil {
		return err
	}

	result, err := o.dir.DeleteDepartment(ctx, department.ID, service.DeleteModeReassign, &target.ID)
	if err != nil {
		return err
	}
	o.printf("Reassigned %d roles and deleted department (ID: %d)\n", result.Reassigned, department.ID)
	return nil
}
