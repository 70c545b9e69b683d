// Package render draws the employee grid, the form and its banners for a
// terminal. It only reads form state; it never mutates it.
package render

import (
	"strings"

	"go-employee-form/internal/employeeclient"
	"go-employee-form/internal/employeeform"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	MsgSaved  = "Employee saved successfully"
	MsgSaving = "Saving..."
	MsgNoRows = "No employees found"
)

// Labels are the human names of the record fields.
var Labels = map[string]string{
	employeeform.FieldFirstName:    "First Name",
	employeeform.FieldLastName:     "Last Name",
	employeeform.FieldEmployeeCode: "Employee Code",
	employeeform.FieldContact:      "Contact",
	employeeform.FieldDateOfBirth:  "Date of Birth",
	employeeform.FieldAddress:      "Address",
}

type Renderer struct {
	theme   Theme
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		theme:   theme,
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.HeaderColor)),
		cell:    lipgloss.NewStyle().Padding(0, 1),
		border:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.BorderColor)),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.SuccessColor)),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ErrorColor)),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.MutedColor)),
	}
}

// Grid renders records in collection order. Dates are cut to YYYY-MM-DD.
func (r *Renderer) Grid(records []employeeform.Record) string {
	if len(records) == 0 {
		return r.muted.Render(MsgNoRows)
	}

	columns := make([]string, 0, len(employeeform.Fields)+1)
	if r.theme.ShowID {
		columns = append(columns, "ID")
	}
	for _, f := range employeeform.Fields {
		columns = append(columns, Labels[f])
	}

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = r.header.Render(c)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, 0, len(columns))
		if r.theme.ShowID {
			row = append(row, rec.ID)
		}
		row = append(row,
			rec.FirstName,
			rec.LastName,
			rec.EmployeeCode,
			rec.Contact,
			displayDate(rec.DateOfBirth),
			rec.Address,
		)
		rows = append(rows, row)
	}

	t := table.New().
		Border(r.theme.border()).
		BorderStyle(r.border).
		StyleFunc(func(row, col int) lipgloss.Style { return r.cell }).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// Banner renders the transient submission state; Idle renders nothing.
func (r *Renderer) Banner(st employeeform.State) string {
	switch st.Phase {
	case employeeform.PhasePending:
		return r.muted.Render(MsgSaving)
	case employeeform.PhaseSucceeded:
		return r.success.Render(MsgSaved)
	case employeeform.PhaseFailed:
		return r.failure.Render(st.Message)
	}
	return ""
}

// Error renders a fetch or delete failure banner.
func (r *Renderer) Error(msg string) string {
	if msg == "" {
		return ""
	}
	return r.failure.Render(msg)
}

// Form renders the draft with each field's message underneath it.
func (r *Renderer) Form(draft employeeform.Record, errs employeeform.ErrorMap) string {
	var b strings.Builder
	for _, f := range employeeform.Fields {
		value, _ := draft.Field(f)
		b.WriteString(r.header.Render(Labels[f] + ":"))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
		if msg, ok := errs[f]; ok {
			b.WriteString("  ")
			b.WriteString(r.failure.Render(msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FieldError renders one inline message, or nothing for a valid field.
func (r *Renderer) FieldError(errs employeeform.ErrorMap, field string) string {
	msg, ok := errs[field]
	if !ok {
		return ""
	}
	return r.failure.Render(msg)
}

// displayDate cuts a timestamp at 'T'. The offset is never applied, so the
// calendar date shown is the one the backend stored.
func displayDate(s string) string {
	return employeeclient.TruncateDate(strings.TrimSpace(s))
}
