package entity

import "time"

// LeadSource origen del prospecto.
type LeadSource int

const (
	LeadSourceWebsite LeadSource = iota + 1
	LeadSourceReferral
	LeadSourceEvent
	LeadSourceEmail
	LeadSourceColdCall
	LeadSourceOther
)

var leadSources = enumSet[LeadSource]{label: "lead source", names: []string{
	"Website", "Referral", "Event", "Email", "ColdCall", "Other",
}}

func (s LeadSource) String() string { return leadSources.name(s) }
func (s LeadSource) Valid() bool { return leadSources.valid(s) }
func (s LeadSource) MarshalJSON() ([]byte, error) { return leadSources.marshal(s) }
func (s *LeadSource) UnmarshalJSON(b []byte) (err error) {
	*s, err = leadSources.unmarshal(b)
	return err
}
func ParseLeadSource(s string) (LeadSource, error) { return leadSources.parse(s) }

// LeadStatus estado del embudo.
type LeadStatus int

const (
	LeadStatusNew LeadStatus = iota + 1
	LeadStatusInProgress
	LeadStatusContacted
	LeadStatusQualified
	LeadStatusLost
	LeadStatusConverted
)

var leadStatuses = enumSet[LeadStatus]{label: "lead status", names: []string{
	"New", "InProgress", "Contacted", "Qualified", "Lost", "Converted",
}}

func (s LeadStatus) String() string { return leadStatuses.name(s) }
func (s LeadStatus) Valid() bool { return leadStatuses.valid(s) }
func (s LeadStatus) MarshalJSON() ([]byte, error) { return leadStatuses.marshal(s) }
func (s *LeadStatus) UnmarshalJSON(b []byte) (err error) {
	*s, err = leadStatuses.unmarshal(b)
	return err
}
func ParseLeadStatus(s string) (LeadStatus, error) { return leadStatuses.parse(s) }

// LeadStatuses todos los estados en orden del embudo.
func LeadStatuses() []LeadStatus { return leadStatuses.values() }

// IndustryType sector del prospecto.
type IndustryType int

const (
	IndustryTechnology IndustryType = iota + 1
	IndustryFinance
	IndustryHealth
	IndustryRetail
	IndustryEducation
	IndustryOther
)

var industries = enumSet[IndustryType]{label: "industry type", names: []string{
	"Technology", "Finance", "Health", "Retail", "Education", "Other",
}}

func (i IndustryType) String() string { return industries.name(i) }
func (i IndustryType) Valid() bool { return industries.valid(i) }
func (i IndustryType) MarshalJSON() ([]byte, error) { return industries.marshal(i) }
func (i *IndustryType) UnmarshalJSON(b []byte) (err error) {
	*i, err = industries.unmarshal(b)
	return err
}
func ParseIndustryType(s string) (IndustryType, error) { return industries.parse(s) }

// Lead prospecto comercial.
type Lead struct {
	ID          string
	CompanyName *string
	ContactName string
	Email       string
	Phone       string
	Source      LeadSource
	Status      LeadStatus
	Industry    IndustryType
	IsConverted bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
