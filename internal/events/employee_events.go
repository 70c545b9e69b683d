package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeUpdated = "employee_updated"
	EmployeeDeleted = "employee_deleted"
)

// EmployeeEvent is published on EmployeeLifecycleTopic, keyed by EmployeeID.
type EmployeeEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode string    `json:"employee_code,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
