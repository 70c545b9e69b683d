package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-employee-form/internal/employeeform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Grid(t *testing.T) {
	r := NewRenderer(DefaultTheme())

	t.Run("rows in order with truncated dates", func(t *testing.T) {
		out := r.Grid([]employeeform.Record{
			{ID: "1", FirstName: "John", LastName: "Doe", EmployeeCode: "1234", Contact: "0812345678", DateOfBirth: "1990-05-17T00:00:00", Address: "Main St"},
			{ID: "2", FirstName: "Jane", LastName: "Roe", EmployeeCode: "4321", Contact: "0899999999", DateOfBirth: "1985-01-02", Address: "Elm St"},
		})

		assert.Contains(t, out, "Employee Code")
		assert.Contains(t, out, "1990-05-17")
		assert.NotContains(t, out, "T00:00:00")
		assert.Less(t, strings.Index(out, "John"), strings.Index(out, "Jane"))
	})

	t.Run("offset timestamp keeps its calendar date", func(t *testing.T) {
		out := r.Grid([]employeeform.Record{
			{ID: "1", FirstName: "John", DateOfBirth: "1990-01-01T00:00:00+05:00"},
		})

		assert.Contains(t, out, "1990-01-01")
		assert.NotContains(t, out, "1989-12-31")
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Contains(t, r.Grid(nil), MsgNoRows)
	})

	t.Run("id column hidden", func(t *testing.T) {
		theme := DefaultTheme()
		theme.ShowID = false
		out := NewRenderer(theme).Grid([]employeeform.Record{{ID: "abc-123", FirstName: "John"}})

		assert.NotContains(t, out, "abc-123")
	})
}

func TestRenderer_Banner(t *testing.T) {
	r := NewRenderer(DefaultTheme())

	assert.Empty(t, r.Banner(employeeform.Idle()))
	assert.Contains(t, r.Banner(employeeform.Pending()), MsgSaving)
	assert.Contains(t, r.Banner(employeeform.Succeeded()), MsgSaved)
	assert.Contains(t, r.Banner(employeeform.Failed("Database connection failed")), "Database connection failed")
	assert.Empty(t, r.Error(""))
}

func TestRenderer_Form(t *testing.T) {
	r := NewRenderer(DefaultTheme())
	errs := employeeform.ErrorMap{employeeform.FieldEmployeeCode: "Employee code should be a 4-digit number"}

	out := r.Form(employeeform.Record{FirstName: "John", EmployeeCode: "12"}, errs)

	assert.Contains(t, out, "First Name:")
	assert.Contains(t, out, "Employee code should be a 4-digit number")
	assert.Contains(t, r.FieldError(errs, employeeform.FieldEmployeeCode), "4-digit")
	assert.Empty(t, r.FieldError(errs, employeeform.FieldFirstName))
}

func TestLoadTheme(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		theme, err := LoadTheme("")

		require.NoError(t, err)
		assert.Equal(t, DefaultTheme(), theme)
	})

	t.Run("overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("border: double\nshow_id: false\n"), 0o600))

		theme, err := LoadTheme(path)

		require.NoError(t, err)
		assert.Equal(t, "double", theme.Border)
		assert.False(t, theme.ShowID)
		assert.Equal(t, DefaultTheme().ErrorColor, theme.ErrorColor)
	})

	t.Run("unknown border", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("border: wavy\n"), 0o600))

		_, err := LoadTheme(path)

		assert.ErrorContains(t, err, "unknown border")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Error(t, err)
	})
}
