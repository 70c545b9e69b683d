package app

import (
	"testing"
	"time"

	"go-employee-form/internal/employeeclient"
	"go-employee-form/internal/employeeform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("EMPLOYEE_API_URL", "")
		t.Setenv("EMPLOYEE_DOB_FIELD", "")
		t.Setenv("EMPLOYEE_ADDRESS_POLICY", "")
		t.Setenv("EMPLOYEE_HTTP_TIMEOUT", "")

		cfg, err := LoadClientConfig()

		require.NoError(t, err)
		assert.Equal(t, DefaultEmployeeAPI, cfg.API.BaseURL)
		assert.Equal(t, employeeclient.DOBFieldLower, cfg.API.DOBField)
		assert.Equal(t, employeeclient.DefaultTimeout, cfg.API.Timeout)
		assert.Equal(t, employeeform.AddressStrict, cfg.AddressPolicy)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("EMPLOYEE_API_URL", "http://hr.local/api")
		t.Setenv("EMPLOYEE_DOB_FIELD", "doB")
		t.Setenv("EMPLOYEE_ADDRESS_POLICY", "lenient")
		t.Setenv("EMPLOYEE_HTTP_TIMEOUT", "3")

		cfg, err := LoadClientConfig()

		require.NoError(t, err)
		assert.Equal(t, "http://hr.local/api", cfg.API.BaseURL)
		assert.Equal(t, "doB", cfg.API.DOBField)
		assert.Equal(t, 3*time.Second, cfg.API.Timeout)
		assert.Equal(t, employeeform.AddressLenient, cfg.AddressPolicy)
	})

	t.Run("invalid policy", func(t *testing.T) {
		t.Setenv("EMPLOYEE_ADDRESS_POLICY", "loose")

		_, err := LoadClientConfig()

		assert.Error(t, err)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("EMPLOYEE_ADDRESS_POLICY", "")
		t.Setenv("EMPLOYEE_HTTP_TIMEOUT", "soon")

		_, err := LoadClientConfig()

		assert.ErrorContains(t, err, "EMPLOYEE_HTTP_TIMEOUT")
	})
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("EMPLOYEE_ADDRESS_POLICY", "")

	cfg, err := LoadServerConfig()

	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
}
