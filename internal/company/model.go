package company

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DuplicateNameSuffix is appended to the name of a duplicated company.
const DuplicateNameSuffix = " (copia)"

// Company is the domain model for a registered company. Pure data, no
// persistence tags; both backends map to and from it.
type Company struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	CIFNumber           *string   `json:"cif_number"`
	BillingAddress      *string   `json:"billing_address"`
	PostalCode          *int      `json:"postal_code"`
	City                *string   `json:"city"`
	Province            *string   `json:"province"`
	Industry            *string   `json:"industry"`
	IndustrySubCategory *string   `json:"industry_sub_category"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Request is the create/update payload. Every field is optional so updates
// carry field-level merge semantics: a present field replaces the stored
// value, an absent field preserves it. Create additionally requires Name.
type Request struct {
	Name                *string `json:"name"`
	CIFNumber           *string `json:"cif_number"`
	BillingAddress      *string `json:"billing_address"`
	PostalCode          *int    `json:"postal_code"`
	City                *string `json:"city"`
	Province            *string `json:"province"`
	Industry            *string `json:"industry"`
	IndustrySubCategory *string `json:"industry_sub_category"`
}

// NewFromRequest builds a company from a create request. The id and both
// timestamps are server-generated; a missing CIF number is synthesized so the
// business key is always present and unique among generated values.
func NewFromRequest(req Request) Company {
	now := time.Now().UTC()

	cif := req.CIFNumber
	if cif == nil || *cif == "" {
		generated := NewCIFNumber()
		cif = &generated
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}

	return Company{
		ID:                  uuid.NewString(),
		Name:                name,
		CIFNumber:           cif,
		BillingAddress:      req.BillingAddress,
		PostalCode:          req.PostalCode,
		City:                req.City,
		Province:            req.Province,
		Industry:            req.Industry,
		IndustrySubCategory: req.IndustrySubCategory,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ApplyTo merges the request into c: present fields overwrite, absent fields
// keep the stored value. The updated timestamp is always refreshed, the
// created timestamp never.
func (r Request) ApplyTo(c *Company) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.CIFNumber != nil {
		c.CIFNumber = r.CIFNumber
	}
	if r.BillingAddress != nil {
		c.BillingAddress = r.BillingAddress
	}
	if r.PostalCode != nil {
		c.PostalCode = r.PostalCode
	}
	if r.City != nil {
		c.City = r.City
	}
	if r.Province != nil {
		c.Province = r.Province
	}
	if r.Industry != nil {
		c.Industry = r.Industry
	}
	if r.IndustrySubCategory != nil {
		c.IndustrySubCategory = r.IndustrySubCategory
	}
	c.UpdatedAt = time.Now().UTC()
}

// Duplicate produces a copy of c with a fresh identity: new id, new CIF
// number (the business key is never copied), the copy marker appended to the
// name, and both timestamps reset to the duplication instant. Everything else
// is copied verbatim.
func (c Company) Duplicate() Company {
	now := time.Now().UTC()
	cif := NewCIFNumber()

	dup := c
	dup.ID = uuid.NewString()
	dup.Name = c.Name + DuplicateNameSuffix
	dup.CIFNumber = &cif
	dup.CreatedAt = now
	dup.UpdatedAt = now
	return dup
}

// NewCIFNumber synthesizes a CIF from the first group of a fresh UUID.
// Uniqueness rests on the identifier width; generated values are not checked
// against existing records.
func NewCIFNumber() string {
	return "CIF-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
}
