package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee ficha laboral de un usuario interno.
type Employee struct {
	ID               string
	UserID           string
	EmployeeNumber   string
	HireDate         time.Time
	Salary           decimal.Decimal
	WorkPhone        string
	WorkEmail        string
	AnnualLeaveDays  int
	UsedLeaveDays    int
	PerformanceScore decimal.Decimal
	EmergencyContact string
	EmergencyPhone   string
	BankAccount      string
	TaxNumber        string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// NewEmployeeNumber genera EMP-XXXXXXXX (8 hex en mayúsculas).
func NewEmployeeNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "EMP-" + strings.ToUpper(hex[:8])
}

// RemainingLeaveDays días de vacaciones pendientes.
func (e *Employee) RemainingLeaveDays() int {
	return e.AnnualLeaveDays - e.UsedLeaveDays
}
