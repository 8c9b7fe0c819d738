// Package render prints the view tables and status messages
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/thenoetrevino/roster/internal/config/colors"
	"github.com/thenoetrevino/roster/internal/models"
)

// Renderer writes styled output to w. Colors are dropped automatically when
// w is not a terminal.
type Renderer struct {
	w io.Writer

	border  lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	success lipgloss.Style
	notice  lipgloss.Style
}

// New creates a Renderer for w using the color scheme
func New(w io.Writer, scheme colors.ColorScheme) *Renderer {
	r := lipgloss.NewRenderer(w)

	return &Renderer{
		w:       w,
		border:  r.NewStyle().Foreground(lipgloss.Color(scheme.Accent)),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Title)).Padding(0, 1),
		cell:    r.NewStyle().Foreground(lipgloss.Color(scheme.Normal)).Padding(0, 1),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Create)),
		notice:  r.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
	}
}

// Departments prints id and name for every department
func (r *Renderer) Departments(departments []*models.Department) error {
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{strconv.Itoa(d.ID), d.Name})
	}
	return r.table([]string{"id", "name"}, rows)
}

// Roles prints roles with the department name in place of its id
func (r *Renderer) Roles(roles []*models.RoleView) error {
	rows := make([][]string, 0, len(roles))
	for _, v := range roles {
		rows = append(rows, []string{strconv.Itoa(v.ID), v.Title, v.Department, FormatSalary(v.Salary)})
	}
	return r.table([]string{"id", "title", "department", "salary"}, rows)
}

// Employees prints employees; the manager cell is empty when there is none
func (r *Renderer) Employees(employees []*models.EmployeeView) error {
	rows := make([][]string, 0, len(employees))
	for _, v := range employees {
		manager := ""
		if v.Manager != nil {
			manager = *v.Manager
		}
		rows = append(rows, []string{
			strconv.Itoa(v.ID),
			v.FirstName,
			v.LastName,
			v.Title,
			v.Department,
			FormatSalary(v.Salary),
			manager,
		})
	}
	return r.table([]string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}, rows)
}

// Success prints a confirmation line
func (r *Renderer) Success(format string, args ...any) error {
	_, err := fmt.Fprintln(r.w, r.success.Render(fmt.Sprintf(format, args...)))
	return err
}

// Notice prints an informational line
func (r *Renderer) Notice(format string, args ...any) error {
	_, err := fmt.Fprintln(r.w, r.notice.Render(fmt.Sprintf(format, args...)))
	return err
}

func (r *Renderer) table(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			return r.cell
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(r.w, t.String())
	return err
}

// FormatSalary prints a salary without trailing zeros, e.g. 80000 or 50000.5
func FormatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
