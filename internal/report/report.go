// Package report renders the directory views as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"employee-tracker/internal/service"
)

const (
	NoManager    = "No Manager"
	noneManager  = "None"
	cellPaddingX = 1
)

var (
	printer      = message.NewPrinter(language.AmericanEnglish)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, cellPaddingX)
	cellStyle    = lipgloss.NewStyle().Padding(0, cellPaddingX)
	captionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// Money formats an amount in dollars with thousands separators.
func Money(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

func render(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func id(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func manager(name string) string {
	if name == "" {
		return noneManager
	}
	return name
}

func Employees(w io.Writer, rows []service.EmployeeRow) {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{id(row.ID), row.Name(), row.Title, Money(row.Salary), row.Department, manager(row.Manager)})
	}
	render(w, []string{"ID", "Name", "Title", "Salary", "Department", "Manager"}, data)
}

// EmployeesByManager prints one table per manager, employees without a
// manager first.
func EmployeesByManager(w io.Writer, rows []service.EmployeeRow) {
	groups := group(rows, func(row service.EmployeeRow) string {
		if row.Manager == "" {
			return NoManager
		}
		return row.Manager
	}, NoManager)

	for _, g := range groups {
		fmt.Fprintln(w, captionStyle.Render("Manager: "+g.key))
		data := make([][]string, 0, len(g.rows))
		for _, row := range g.rows {
			data = append(data, []string{id(row.ID), row.Name(), row.Title, Money(row.Salary), row.Department})
		}
		render(w, []string{"ID", "Name", "Title", "Salary", "Department"}, data)
	}
}

func EmployeesByDepartment(w io.Writer, rows []service.EmployeeRow) {
	groups := group(rows, func(row service.EmployeeRow) string { return row.Department }, "")

	for _, g := range groups {
		fmt.Fprintln(w, captionStyle.Render("Department: "+g.key))
		data := make([][]string, 0, len(g.rows))
		for _, row := range g.rows {
			data = append(data, []string{id(row.ID), row.Name(), row.Title, Money(row.Salary), manager(row.Manager)})
		}
		render(w, []string{"ID", "Name", "Title", "Salary", "Manager"}, data)
	}
}

func Departments(w io.Writer, rows []service.DepartmentRow) {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{id(row.ID), row.Name, strconv.FormatInt(row.RoleCount, 10)})
	}
	render(w, []string{"ID", "Department", "Roles"}, data)
}

func Roles(w io.Writer, rows []service.RoleRow) {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{id(row.ID), row.Title, Money(row.Salary), row.Department, strconv.FormatInt(row.EmployeeCount, 10)})
	}
	render(w, []string{"ID", "Title", "Salary", "Department", "Employees"}, data)
}

func Budgets(w io.Writer, rows []service.DepartmentBudget) {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{id(row.ID), row.Name, strconv.FormatInt(row.Headcount, 10), Money(row.Budget)})
	}
	render(w, []string{"ID", "Department", "Employees", "Utilized Budget"}, data)
}

type employeeGroup struct {
	key  string
	rows []service.EmployeeRow
}

// group buckets rows by key. Groups are sorted by key with first always
// leading; rows keep their order inside a group.
func group(rows []service.EmployeeRow, key func(service.EmployeeRow) string, first string) []employeeGroup {
	index := map[string]int{}
	var groups []employeeGroup
	for _, row := range rows {
		k := key(row)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, employeeGroup{key: k})
		}
		groups[i].rows = append(groups[i].rows, row)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].key == first || groups[j].key == first {
			return groups[i].key == first && groups[j].key != first
		}
		return groups[i].key < groups[j].key
	})
	return groups
}
