package model

// GlobalID is an identifier issued under an ISO/IEC 6523 scheme
type GlobalID struct {
	SchemeID GlobalIDSchemeIdentifier `json:"scheme_id"`
	ID       string                   `json:"id"`
}

// NewGlobalID creates a global identifier
func NewGlobalID(scheme GlobalIDSchemeIdentifier, id string) *GlobalID {
	return &GlobalID{SchemeID: scheme, ID: id}
}

// IsEmpty reports whether the identifier carries no value
func (g *GlobalID) IsEmpty() bool {
	return g == nil || g.ID == ""
}

// LegalOrganization is the registration of a party as a legal entity
type LegalOrganization struct {
	ID                  *GlobalID `json:"id,omitempty"`
	TradingBusinessName string    `json:"trading_business_name,omitempty"`
}

// NewLegalOrganization creates a legal organization reference
func NewLegalOrganization(scheme GlobalIDSchemeIdentifier, id, tradingBusinessName string) *LegalOrganization {
	lo := &LegalOrganization{TradingBusinessName: tradingBusinessName}
	if id != "" {
		lo.ID = NewGlobalID(scheme, id)
	}
	return lo
}

// ElectronicAddress is a party's routing address, e.g. an email or Leitweg-ID
type ElectronicAddress struct {
	Scheme  ElectronicAddressScheme `json:"scheme"`
	Address string                  `json:"address"`
}

// Contact is a contact person or department of a party
type Contact struct {
	Name         string `json:"name,omitempty"`
	OrgUnit      string `json:"org_unit,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNo      string `json:"phone_no,omitempty"`
	FaxNo        string `json:"fax_no,omitempty"`
}

// IsEmpty reports whether no contact field is set
func (c *Contact) IsEmpty() bool {
	return c == nil || (c.Name == "" && c.OrgUnit == "" && c.EmailAddress == "" && c.PhoneNo == "" && c.FaxNo == "")
}

// TaxRegistration is a fiscal number (FC) or VAT identifier (VA)
type TaxRegistration struct {
	SchemeID TaxRegistrationSchemeID `json:"scheme_id"`
	No       string                  `json:"no"`
}

// Party is a trade party; the role is given by the Invoice field holding it
type Party struct {
	ID                 string             `json:"id,omitempty"`
	GlobalID           *GlobalID          `json:"global_id,omitempty"`
	Name               string             `json:"name,omitempty"`
	Description        string             `json:"description,omitempty"`
	Street             string             `json:"street,omitempty"`
	AddressLine2       string             `json:"address_line2,omitempty"`
	AddressLine3       string             `json:"address_line3,omitempty"`
	Postcode           string             `json:"postcode,omitempty"`
	City               string             `json:"city,omitempty"`
	CountrySubdivision string             `json:"country_subdivision,omitempty"`
	Country            string             `json:"country,omitempty"`
	LegalOrganization  *LegalOrganization `json:"legal_organization,omitempty"`
	ElectronicAddress  *ElectronicAddress `json:"electronic_address,omitempty"`
	Contact            *Contact           `json:"contact,omitempty"`
	TaxRegistrations   []TaxRegistration  `json:"tax_registrations,omitempty"`
}

// HasAddress reports whether any postal address field is set
func (p *Party) HasAddress() bool {
	return p.Street != "" || p.AddressLine2 != "" || p.AddressLine3 != "" ||
		p.Postcode != "" || p.City != "" || p.CountrySubdivision != "" || p.Country != ""
}

// AddTaxRegistration appends a tax registration unless no is empty
func (p *Party) AddTaxRegistration(scheme TaxRegistrationSchemeID, no string) {
	if no == "" {
		return
	}
	p.TaxRegistrations = append(p.TaxRegistrations, TaxRegistration{SchemeID: scheme, No: no})
}
