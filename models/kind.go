package models

import (
	"fmt"
	"strings"
)

// Kind names a record schema. Its lowercased form is the collection name.
type Kind string

const (
	KindInquiry Kind = "Inquiry"
	KindUser    Kind = "User"
	KindProduct Kind = "Product"
)

func (k Kind) Collection() string {
	return strings.ToLower(string(k))
}

// Record is a validated value of one of the schemas above.
type Record interface {
	Kind() Kind
}

// Parse validates raw field values against the schema for kind.
func Parse(kind Kind, raw map[string]any) (Record, error) {
	switch kind {
	case KindInquiry:
		inq, err := ParseInquiry(raw)
		if err != nil {
			return nil, err
		}
		return inq, nil
	case KindUser:
		u, err := ParseUser(raw)
		if err != nil {
			return nil, err
		}
		return u, nil
	case KindProduct:
		p, err := ParseProduct(raw)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}
