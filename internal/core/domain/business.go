package domain

import (
	"strings"
	"time"
)

// BusinessContext describes the business a piece of content is written for.
// It is built per request from a stored profile or from anonymous defaults
// and is never persisted on its own.
type BusinessContext struct {
	BusinessName   string `json:"business_name" yaml:"business_name"`
	BusinessType   string `json:"business_type" yaml:"business_type"`
	Description    string `json:"description" yaml:"description"`
	TargetAudience string `json:"target_audience" yaml:"target_audience"`
	Location       string `json:"location" yaml:"location"`
}

// BusinessProfile is the persisted description of a user's business. A user
// owns at most one profile.
type BusinessProfile struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user"`
	ContactInfo map[string]string `json:"contact_info"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	BusinessContext
}

// ProductDetails carries the extras of a product description request.
type ProductDetails struct {
	Name           string   `json:"name"`
	Features       []string `json:"features"`
	Benefits       []string `json:"benefits"`
	TargetCustomer string   `json:"target_customer"`
}

// WithDefaults returns a copy of b where every empty field is taken from
// defaults.
func (b BusinessContext) WithDefaults(defaults BusinessContext) BusinessContext {
	pick := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}
	return BusinessContext{
		BusinessName:   pick(b.BusinessName, defaults.BusinessName),
		BusinessType:   pick(b.BusinessType, defaults.BusinessType),
		Description:    pick(b.Description, defaults.Description),
		TargetAudience: pick(b.TargetAudience, defaults.TargetAudience),
		Location:       pick(b.Location, defaults.Location),
	}
}

// IsZero reports whether no field of b is set.
func (b BusinessContext) IsZero() bool {
	return b == BusinessContext{}
}
