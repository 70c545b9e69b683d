package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"size:20;not null"`
	LastName     string    `gorm:"size:20;not null"`
	EmployeeCode string    `gorm:"size:4;not null;uniqueIndex:uq_employee_code"`
	Contact      string    `gorm:"size:10;not null"`
	DateOfBirth  time.Time `gorm:"type:date;not null"`
	Address      string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
