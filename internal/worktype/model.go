package worktype

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bizapi/internal/apperr"
)

// DataType tags a work attribute's value type. It serializes to exactly the
// lowercase tokens "string" and "numeric"; any other token is a validation
// failure, never a silent default.
type DataType int

const (
	DataTypeString DataType = iota
	DataTypeNumeric
)

const (
	dataTypeStringToken  = "string"
	dataTypeNumericToken = "numeric"
)

// ParseDataType converts a wire token into a DataType.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case dataTypeStringToken:
		return DataTypeString, nil
	case dataTypeNumericToken:
		return DataTypeNumeric, nil
	default:
		return 0, apperr.Validation(fmt.Sprintf("unknown data type: %s", s))
	}
}

func (d DataType) String() string {
	if d == DataTypeNumeric {
		return dataTypeNumericToken
	}
	return dataTypeStringToken
}

func (d DataType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DataType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDataType(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// WorkType is a definition of a kind of work, owning an ordered collection of
// attribute-type definitions. Attributes live and die with their work type.
type WorkType struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Attributes  []WorkAttributeType `json:"attributes"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// WorkAttributeType defines one attribute of a work type.
type WorkAttributeType struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	DataType   DataType  `json:"data_type"`
	IsRequired bool      `json:"is_required"`
	IsHidden   bool      `json:"is_hidden"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateRequest is the payload for creating a work type. When Attributes is
// empty the standard defaults are seeded.
type CreateRequest struct {
	Title       string                   `json:"title"`
	Description *string                  `json:"description"`
	Attributes  []CreateAttributeRequest `json:"attributes"`
}

// CreateAttributeRequest is the payload for one attribute definition.
type CreateAttributeRequest struct {
	Name       string   `json:"name"`
	DataType   DataType `json:"data_type"`
	IsRequired bool     `json:"is_required"`
	IsHidden   bool     `json:"is_hidden"`
}

// NewAttribute builds an attribute definition with a fresh id and timestamps.
func NewAttribute(name string, dataType DataType, required, hidden bool) WorkAttributeType {
	now := time.Now().UTC()
	return WorkAttributeType{
		ID:         uuid.New(),
		Name:       name,
		DataType:   dataType,
		IsRequired: required,
		IsHidden:   hidden,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SummaryAttribute is the standard required string attribute every defaulted
// work type starts with.
func SummaryAttribute() WorkAttributeType {
	return NewAttribute("Summary", DataTypeString, true, false)
}

// DescriptionAttribute is the second standard default.
func DescriptionAttribute() WorkAttributeType {
	return NewAttribute("Description", DataTypeString, true, false)
}

// NewFromRequest builds a work type from a create request. A request without
// attributes gets the two standard defaults; a request that names attributes
// gets exactly those, in order.
func NewFromRequest(req CreateRequest) WorkType {
	now := time.Now().UTC()

	attrs := make([]WorkAttributeType, 0, len(req.Attributes))
	if len(req.Attributes) == 0 {
		attrs = append(attrs, SummaryAttribute(), DescriptionAttribute())
	}
	for _, a := range req.Attributes {
		attrs = append(attrs, NewAttribute(a.Name, a.DataType, a.IsRequired, a.IsHidden))
	}

	return WorkType{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Attributes:  attrs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
