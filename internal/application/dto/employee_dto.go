package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest UserID solo se usa al crear.
type EmployeeRequest struct {
	UserID           string          `json:"userId"`
	HireDate         time.Time       `json:"hireDate" validate:"required"`
	Salary           decimal.Decimal `json:"salary" swaggertype:"string"`
	WorkEmail        string          `json:"workEmail" validate:"omitempty,email"`
	WorkPhone        string          `json:"workPhone" validate:"max=50"`
	AnnualLeaveDays  int             `json:"annualLeaveDays" validate:"min=0"`
	UsedLeaveDays    int             `json:"usedLeaveDays" validate:"min=0"`
	PerformanceScore decimal.Decimal `json:"performanceScore" swaggertype:"string"`
	EmergencyContact string          `json:"emergencyContact" validate:"max=200"`
	EmergencyPhone   string          `json:"emergencyPhone" validate:"max=50"`
	BankAccount      string          `json:"bankAccount" validate:"max=100"`
	TaxNumber        string          `json:"taxNumber" validate:"max=50"`
}

type EmployeeResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	EmployeeNumber     string          `json:"employeeNumber"`
	HireDate           time.Time       `json:"hireDate"`
	Salary             decimal.Decimal `json:"salary" swaggertype:"string"`
	WorkEmail          string          `json:"workEmail"`
	WorkPhone          string          `json:"workPhone"`
	AnnualLeaveDays    int             `json:"annualLeaveDays"`
	UsedLeaveDays      int             `json:"usedLeaveDays"`
	RemainingLeaveDays int             `json:"remainingLeaveDays"`
	PerformanceScore   decimal.Decimal `json:"performanceScore" swaggertype:"string"`
	EmergencyContact   string          `json:"emergencyContact"`
	EmergencyPhone     string          `json:"emergencyPhone"`
	BankAccount        string          `json:"bankAccount"`
	TaxNumber          string          `json:"taxNumber"`
	User               *UserResponse   `json:"user,omitempty"`
}
