// Package workflow runs the operator commands: each one gathers input through
// a prompt.Prompter, calls the directory and prints the outcome.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/menu"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/report"
	"employee-tracker/internal/service"
)

type Orchestrator struct {
	dir      service.Directory
	prompter prompt.Prompter
	out      io.Writer
	log      *zap.Logger
}

func New(dir service.Directory, prompter prompt.Prompter, out io.Writer, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		dir:      dir,
		prompter: prompter,
		out:      out,
		log:      log,
	}
}

type command struct {
	label string
	intro string
	name  string
	run   func(ctx context.Context) error
}

// Register adds the View, Add, Update and Delete submenus to m.
func (o *Orchestrator) Register(m *menu.Menu) {
	m.AddSubmenu("View", o.items(
		command{"View all employees", "Viewing all employees...", "viewing employees", o.ViewEmployees},
		command{"View employees by manager", "Viewing employees by manager...", "viewing employees", o.ViewEmployeesByManager},
		command{"View employees by department", "Viewing employees by department...", "viewing employees", o.ViewEmployeesByDepartment},
		command{"View all departments", "Viewing all departments...", "viewing departments", o.ViewDepartments},
		command{"View all roles", "Viewing all roles...", "viewing roles", o.ViewRoles},
		command{"View department budgets", "Viewing department budgets...", "viewing budgets", o.ViewBudgets},
	)...)
	m.AddSubmenu("Add", o.items(
		command{"Add an employee", "Adding an employee...", "adding employee", o.AddEmployee},
		command{"Add an employee by name", "Adding an employee...", "adding employee", o.AddEmployeeByName},
		command{"Add role", "Adding a role...", "adding role", o.AddRole},
		command{"Add department", "Adding a department...", "adding department", o.AddDepartment},
	)...)
	m.AddSubmenu("Update", o.items(
		command{"Update employee role", "Updating employee role...", "updating employee role", o.UpdateEmployeeRole},
		command{"Update employee manager", "Updating employee manager...", "updating employee manager", o.UpdateEmployeeManager},
	)...)
	m.AddSubmenu("Delete", o.items(
		command{"Delete an employee", "Deleting an employee...", "deleting employee", o.DeleteEmployee},
		command{"Delete a role", "Deleting a role...", "deleting role", o.DeleteRole},
		command{"Delete a department", "Deleting a department...", "deleting department", o.DeleteDepartment},
	)...)
}

func (o *Orchestrator) items(commands ...command) []menu.Item {
	items := make([]menu.Item, 0, len(commands))
	for _, c := range commands {
		c := c // per-iteration copy; go.mod targets Go 1.21 loop semantics
		items = append(items, menu.Item{
			Label: c.label,
			Action: func(ctx context.Context) error {
				o.println(c.intro)
				return o.finish(c.name, c.run(ctx))
			},
		})
	}
	return items
}

// finish reports the outcome of one workflow. Errors the operator can act on
// are printed and the session goes on. Anything else is logged and returned
// for the caller to print once.
func (o *Orchestrator) finish(name string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, prompt.ErrBack):
		o.println("Operation cancelled")
		return nil
	case errors.Is(err, prompt.ErrInterrupted):
		return err
	case apperror.Recoverable(err):
		o.log.Debug("workflow stopped",
			zap.String("workflow", name),
			zap.String("code", string(apperror.GetCode(err))),
			zap.Error(err),
		)
		o.println(err.Error())
		return nil
	}

	o.log.Error("workflow failed", zap.String("workflow", name), zap.Error(err))
	return fmt.Errorf("%s: %w", name, err)
}

func (o *Orchestrator) println(a ...any) {
	fmt.Fprintln(o.out, a...)
}

func (o *Orchestrator) printf(format string, a ...any) {
	fmt.Fprintf(o.out, format, a...)
}

func emptyPrerequisite(message string) error {
	return apperror.New(apperror.CodeEmptyPrerequisite, message)
}

func cancelled(message string) error {
	return apperror.New(apperror.CodeCancelled, message)
}

func roleLabel(r service.RoleDTO) string {
	return fmt.Sprintf("%s - %s - %s", r.Title, report.Money(r.Salary), r.DepartmentName)
}

func roleImpactLabel(r service.RoleImpact) string {
	return fmt.Sprintf("%s (%s) - %d employees", r.Title, r.DepartmentName, r.EmployeeCount)
}

func employeeImpactLabel(e service.EmployeeImpact) string {
	return fmt.Sprintf("%s - Manages %d employees", e.Name(), e.ReportCount)
}

func departmentImpactLabel(d service.DepartmentImpact) string {
	return fmt.Sprintf("%s - %d roles", d.Name, d.RoleCount)
}
