package models

import (
	"bytes"
	"encoding/json"
)

// Inquiry is a restaurant partner lead submitted from the website.
// Collection: "inquiry".
type Inquiry struct {
	RestaurantName string   `json:"restaurant_name" binding:"required"`
	ContactName    string   `json:"contact_name" binding:"required"`
	Phone          string   `json:"phone" binding:"required"`
	Email          *string  `json:"email" binding:"omitnil,email"`
	City           *string  `json:"city"`
	Platform       Platform `json:"platform" binding:"oneof=Zomato Swiggy Both Other"`
	ShootType      *string  `json:"shoot_type"` // Menu, Ambience, Team, Video
	BudgetRange    *string  `json:"budget_range"`
	HeardFrom      *string  `json:"heard_from"`
	Message        *string  `json:"message"`
	Status         Status   `json:"status" binding:"oneof=new contacted quoted won lost"`
}

func (Inquiry) Kind() Kind { return KindInquiry }

// UnmarshalJSON fills platform and status only when their keys are absent.
// A null platform also falls back to Both; a null status is kept empty so
// validation rejects it, as it does an empty string for either field.
func (i *Inquiry) UnmarshalJSON(data []byte) error {
	type plain Inquiry
	p := plain{Platform: PlatformBoth, Status: StatusNew}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	if raw, ok := keys["status"]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		p.Status = ""
	}
	*i = Inquiry(p)
	return nil
}

// WithDefaults returns a copy with platform and status filled in. It is for
// values built in code; decoded values already carry their defaults.
func (i Inquiry) WithDefaults() Inquiry {
	if i.Platform == "" {
		i.Platform = PlatformBoth
	}
	if i.Status == "" {
		i.Status = StatusNew
	}
	return i
}

func ParseInquiry(raw map[string]any) (Inquiry, error) {
	var inq Inquiry
	if err := decode(raw, &inq); err != nil {
		return Inquiry{}, err
	}
	if err := Validate(&inq); err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}
