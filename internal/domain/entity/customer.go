package entity

import "time"

// CustomerType clasifica al cliente.
type CustomerType int

const (
	CustomerTypePerson CustomerType = iota + 1
	CustomerTypeBusiness
)

var customerTypes = enumSet[CustomerType]{label: "customer type", names: []string{"Person", "Business"}}

func (t CustomerType) String() string { return customerTypes.name(t) }
func (t CustomerType) Valid() bool { return customerTypes.valid(t) }

func (t CustomerType) MarshalJSON() ([]byte, error) { return customerTypes.marshal(t) }

func (t *CustomerType) UnmarshalJSON(data []byte) (err error) {
	*t, err = customerTypes.unmarshal(data)
	return err
}

// ParseCustomerType acepta nombre u ordinal.
func ParseCustomerType(s string) (CustomerType, error) { return customerTypes.parse(s) }

// Customer representa un cliente del CRM (persona o empresa).
type Customer struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	Type        CustomerType
	CompanyName *string // solo Business
	TaxNumber   *string
	Sector      *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// FullName nombre y apellido separados por un espacio.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
