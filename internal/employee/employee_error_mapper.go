package employee

import (
	"errors"
	"strings"

	employeeerrors "go-employee-form/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const employeeCodeConstraint = "uq_employee_code"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.ErrEmployeeCodeExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == employeeCodeConstraint {
		return employeeerrors.ErrEmployeeCodeExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, employeeCodeConstraint) {
		return employeeerrors.ErrEmployeeCodeExists
	}
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "employee_code") {
		return employeeerrors.ErrEmployeeCodeExists
	}

	return err
}
