package service

import "context"

type DeleteMode string

const (
	// DeleteModeRestrict deletes only rows nothing references.
	DeleteModeRestrict DeleteMode = "restrict"
	// DeleteModeReassign moves dependents to another row, then deletes.
	DeleteModeReassign DeleteMode = "reassign"
)

type CreateRoleInput struct {
	Title        string
	Salary       float64
	DepartmentID uint
}

type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	RoleID    uint
	ManagerID *uint
}

// CreateEmployeeByNameInput describes an employee by natural keys. The department
// and role are created when missing; ManagerName is "First Last" or "None".
type CreateEmployeeByNameInput struct {
	FirstName      string
	LastName       string
	DepartmentName string
	RoleTitle      string
	Salary         float64
	ManagerName    string
}

type DepartmentDTO struct {
	ID   uint
	Name string
}

type RoleDTO struct {
	ID             uint
	Title          string
	Salary         float64
	DepartmentID   uint
	DepartmentName string
}

type EmployeeDTO struct {
	ID        uint
	FirstName string
	LastName  string
	RoleID    uint
	Title     string
	ManagerID *uint
}

func (e EmployeeDTO) Name() string { return e.FirstName + " " + e.LastName }

type DepartmentImpact struct {
	ID        uint
	Name      string
	RoleCount int64
}

type RoleImpact struct {
	ID             uint
	Title          string
	DepartmentName string
	EmployeeCount  int64
}

type EmployeeImpact struct {
	ID          uint
	FirstName   string
	LastName    string
	ReportCount int64
}

func (e EmployeeImpact) Name() string { return e.FirstName + " " + e.LastName }

type DeleteResult struct {
	// Reassigned is the number of dependent rows moved or detached.
	Reassigned int64
	Deleted    int64
}

type EmployeeRow struct {
	ID         uint
	FirstName  string
	LastName   string
	Title      string
	Salary     float64
	Department string
	// Manager is empty when the employee has no manager.
	Manager string
}

func (e EmployeeRow) Name() string { return e.FirstName + " " + e.LastName }

type DepartmentRow struct {
	ID        uint
	Name      string
	RoleCount int64
}

type RoleRow struct {
	ID            uint
	Title         string
	Salary        float64
	Department    string
	EmployeeCount int64
}

type DepartmentBudget struct {
	ID        uint
	Name      string
	Headcount int64
	Budget    float64
}

// Directory is the hierarchy the menu workflows operate on.
type Directory interface {
	ResolveOrCreateDepartment(ctx context.Context, name string) (uint, error)
	ResolveOrCreateRole(ctx context.Context, title string, salary float64, departmentID uint) (uint, error)
	ResolveManagerReference(ctx context.Context, selection string) (*uint, error)

	ListDepartments(ctx context.Context) ([]DepartmentDTO, error)
	ListRoles(ctx context.Context) ([]RoleDTO, error)
	ListEmployees(ctx context.Context) ([]EmployeeDTO, error)

	DepartmentImpacts(ctx context.Context) ([]DepartmentImpact, error)
	RoleImpacts(ctx context.Context) ([]RoleImpact, error)
	EmployeeImpacts(ctx context.Context) ([]EmployeeImpact, error)
	AlternativeDepartments(ctx context.Context, excludeID uint) ([]DepartmentDTO, error)
	AlternativeRoles(ctx context.Context, excludeID uint) ([]RoleDTO, error)

	CreateDepartment(ctx context.Context, name string) (DepartmentDTO, error)
	CreateRole(ctx context.Context, input CreateRoleInput) (RoleDTO, error)
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (EmployeeDTO, error)
	CreateEmployeeByName(ctx context.Context, input CreateEmployeeByNameInput) (EmployeeDTO, error)
	UpdateEmployeeRole(ctx context.Context, employeeID uint, roleID uint) error
	UpdateEmployeeManager(ctx context.Context, employeeID uint, managerID *uint) error

	DeleteEmployee(ctx context.Context, employeeID uint) (DeleteResult, error)
	DeleteRole(ctx context.Context, roleID uint, mode DeleteMode, reassignToRoleID *uint) (DeleteResult, error)
	DeleteDepartment(ctx context.Context, departmentID uint, mode DeleteMode, reassignToDepartmentID *uint) (DeleteResult, error)

	EmployeeReport(ctx context.Context) ([]EmployeeRow, error)
	DepartmentReport(ctx context.Context) ([]DepartmentRow, error)
	RoleReport(ctx context.Context) ([]RoleRow, error)
	DepartmentBudgets(ctx context.Context) ([]DepartmentBudget, error)
}
