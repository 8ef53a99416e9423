package workflow

import (
	"context"

	"employee-tracker/internal/prompt"
	"employee-tracker/internal/service"
)

var nameValidator = prompt.All(prompt.ValidateRequired, prompt.ValidateDBString)

// managerChoice is one entry of a manager picker. A nil id means no manager.
type managerChoice struct {
	id   *uint
	name string
}

func managerChoices(employees []service.EmployeeDTO, exclude uint) []managerChoice {
	choices := make([]managerChoice, 0, len(employees)+1)
	for _, employee := range employees {
		if employee.ID == exclude {
			continue
		}
		id := employee.ID
		choices = append(choices, managerChoice{id: &id, name: employee.Name()})
	}
	return append(choices, managerChoice{name: service.NoManager})
}

func (o *Orchestrator) AddEmployee(ctx context.Context) error {
	roles, err := o.dir.ListRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return emptyPrerequisite("No roles found in the database. Please add roles before adding employees.")
	}
	employees, err := o.dir.ListEmployees(ctx)
	if err != nil {
		return err
	}

	firstName, err := o.prompter.Text(ctx, prompt.TextPrompt{Label: "Enter employee's first name:", Validate: nameValidator})
	if err != nil {
		return err
	}
	lastName, err := o.prompter.Text(ctx, prompt.TextPrompt{Label: "Enter employee's last name:", Validate: nameValidator})
	if err != nil {
		return err
	}
	role, err := prompt.Pick(ctx, o.prompter, "Select employee's role:", roles, roleLabel)
	if err != nil {
		return err
	}
	manager, err := prompt.Pick(ctx, o.prompter, "Select employee's manager (optional):", managerChoices(employees, 0),
		func(m managerChoice) string { return m.name })
	if err != nil {
		return err
	}

	if _, err := o.dir.CreateEmployee(ctx, service.CreateEmployeeInput{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    role.ID,
		ManagerID: manager.id,
	}); err != nil {
		return err
	}
	o.println("Employee added successfully")
	return nil
}

// AddEmployeeByName takes the department, role and manager as free text.
// Missing departments and roles are created along with the employee.
func (o *Orchestrator) AddEmployeeByName(ctx context.Context) error {
	firstName, err := o.prompter.Text(ctx, prompt.TextPrompt{Label: "Enter employee's first name:", Validate: nameValidator})
	if err != nil {
		return err
	}
	lastName, err := o.prompter.Text(ctx, prompt.TextPrompt{Label: "Enter employee's last name:", Validate: nameValidator})
	if err != nil {
		return err
	}
	department, err := o.prompter.Text(ctx, prompt.TextPrompt{Label: "Enter employee's department:", Validate: nameValidator})
	if err != nil {
		return err
	}
	title, err := o.prompter.Text(ctx, prompt.TextPrompt{Label: "Enter employee's role:", Validate: nameValidator})
	if err != nil {
		return err
	}
	salary, err := o.prompter.Number(ctx, prompt.NumberPrompt{Label: "Enter role salary:", Validate: prompt.ValidateSalary})
	if err != nil {
		return err
	}
	managerName, err := o.prompter.Text(ctx, prompt.TextPrompt{
		Label:    "Enter manager's full name (or None):",
		Default:  service.NoManager,
		Validate: prompt.ValidateRequired,
	})
	if err != nil {
		return err
	}

	if _, err := o.dir.CreateEmployeeByName(ctx, service.CreateEmployeeByNameInput{
		FirstName:      firstName,
		LastName:       lastName,
		DepartmentName: department,
		RoleTitle:      title,
		Salary:         salary,
		ManagerName:    managerName,
	}); err != nil {
		return err
	}
	o.println("Employee added successfully")
	return nil
}

func (o *Orchestrator) AddRole(ctx context.Context) error {
	departments, err := o.dir.ListDepartments(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		return emptyPrerequisite("No departments found in the database. Please add departments before adding roles.")
	}

	title, err := o.prompter.Text(ctx, prompt.TextPrompt{Label: "Role title:", Validate: nameValidator})
	if err != nil {
		return err
	}
	salary, err := o.prompter.Number(ctx, prompt.NumberPrompt{Label: "Salary:", Validate: prompt.ValidateSalary})
	if err != nil {
		return err
	}
	department, err := prompt.Pick(ctx, o.prompter, "Select department:", departments, func(d service.DepartmentDTO) string {
		return d.Name
	})
	if err != nil {
		return err
	}

	role, err := o.dir.CreateRole(ctx, service.CreateRoleInput{
		Title:        title,
		Salary:       salary,
		DepartmentID: department.ID,
	})
	if err != nil {
		return err
	}
	o.printf("Role created successfully. Role ID: %d\n", role.ID)
	return nil
}

func (o *Orchestrator) AddDepartment(ctx context.Context) error {
	departments, err := o.dir.ListDepartments(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(departments))
	for _, department := range departments {
		names = append(names, department.Name)
	}

	name, err := o.prompter.Text(ctx, prompt.TextPrompt{
		Label:    "Enter new department name:",
		Validate: prompt.All(nameValidator, prompt.NotIn(names, "Department '%s' already exists")),
	})
	if err != nil {
		return err
	}

	department, err := o.dir.CreateDepartment(ctx, name)
	if err != nil {
		return err
	}
	o.printf("Department added successfully. Department ID: %d\n", department.ID)
	return nil
}
