package models

import (
	"errors"
	"testing"
)

func validInquiry() map[string]any {
	return map[string]any{
		"restaurant_name": "Spice Hub",
		"contact_name":    "Asha",
		"phone":           "9999999999",
	}
}

func fieldsOf(t *testing.T, err error) map[string]FieldError {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	out := make(map[string]FieldError, len(ve.Fields))
	for _, f := range ve.Fields {
		out[f.Loc[len(f.Loc)-1]] = f
	}
	return out
}

func TestParseInquiry_Defaults(t *testing.T) {
	inq, err := ParseInquiry(validInquiry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inq.Status != StatusNew {
		t.Errorf("expected status=new, got %q", inq.Status)
	}
	if inq.Platform != PlatformBoth {
		t.Errorf("expected platform=Both, got %q", inq.Platform)
	}
	if inq.Email != nil || inq.City != nil || inq.Message != nil {
		t.Error("expected optional fields to stay nil")
	}
}

func TestParseInquiry_AllFields(t *testing.T) {
	raw := validInquiry()
	raw["email"] = "asha@spicehub.in"
	raw["city"] = "Pune"
	raw["platform"] = "Swiggy"
	raw["shoot_type"] = "Menu"
	raw["budget_range"] = "10k-20k"
	raw["heard_from"] = "Instagram"
	raw["message"] = "New menu launching next month"
	raw["status"] = "quoted"

	inq, err := ParseInquiry(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inq.Platform != PlatformSwiggy {
		t.Errorf("expected platform=Swiggy, got %q", inq.Platform)
	}
	if inq.Status != StatusQuoted {
		t.Errorf("expected status=quoted, got %q", inq.Status)
	}
	if inq.Email == nil || *inq.Email != "asha@spicehub.in" {
		t.Errorf("expected email to be kept, got %v", inq.Email)
	}
}

func TestParseInquiry_MissingRequired(t *testing.T) {
	for _, field := range []string{"restaurant_name", "contact_name", "phone"} {
		t.Run(field, func(t *testing.T) {
			raw := validInquiry()
			delete(raw, field)

			_, err := ParseInquiry(raw)
			fields := fieldsOf(t, err)
			fe, ok := fields[field]
			if !ok {
				t.Fatalf("expected error for %s, got %+v", field, fields)
			}
			if fe.Type != "value_error.missing" {
				t.Errorf("expected value_error.missing, got %q", fe.Type)
			}
			if fe.Loc[0] != "body" {
				t.Errorf("expected loc to start with body, got %v", fe.Loc)
			}
		})
	}
}

func TestParseInquiry_EmptyRequiredRejected(t *testing.T) {
	raw := validInquiry()
	raw["phone"] = ""

	_, err := ParseInquiry(raw)
	if _, ok := fieldsOf(t, err)["phone"]; !ok {
		t.Error("expected empty phone to be rejected")
	}
}

func TestParseInquiry_InvalidEmail(t *testing.T) {
	raw := validInquiry()
	raw["email"] = "not-an-email"

	_, err := ParseInquiry(raw)
	fe, ok := fieldsOf(t, err)["email"]
	if !ok {
		t.Fatal("expected email error")
	}
	if fe.Type != "value_error.email" {
		t.Errorf("expected value_error.email, got %q", fe.Type)
	}
}

func TestParseInquiry_EnumViolations(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"unknown platform", "platform", "Uber Eats"},
		{"empty platform", "platform", ""},
		{"unknown status", "status", "archived"},
		{"empty status", "status", ""},
		{"null status", "status", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validInquiry()
			raw[tt.field] = tt.value

			_, err := ParseInquiry(raw)
			fe, ok := fieldsOf(t, err)[tt.field]
			if !ok {
				t.Fatalf("expected %s error", tt.field)
			}
			if fe.Type != "value_error.const" {
				t.Errorf("expected value_error.const, got %q", fe.Type)
			}
		})
	}
}

func TestParseInquiry_NullPlatformDefaults(t *testing.T) {
	raw := validInquiry()
	raw["platform"] = nil

	inq, err := ParseInquiry(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inq.Platform != PlatformBoth {
		t.Errorf("expected platform=Both, got %q", inq.Platform)
	}
}

func TestParseInquiry_WrongType(t *testing.T) {
	raw := validInquiry()
	raw["phone"] = 9999999999

	_, err := ParseInquiry(raw)
	fe, ok := fieldsOf(t, err)["phone"]
	if !ok {
		t.Fatal("expected phone type error")
	}
	if fe.Type != "type_error.str" {
		t.Errorf("expected type_error.str, got %q", fe.Type)
	}
}

func TestParseUser(t *testing.T) {
	u, err := ParseUser(map[string]any{"name": "Ravi", "email": "ravi@example.com", "address": "MG Road"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.IsActive == nil || !*u.IsActive {
		t.Error("expected is_active to default to true")
	}

	_, err = ParseUser(map[string]any{"name": "Ravi", "email": "ravi@example.com", "address": "MG Road", "age": 121})
	fe, ok := fieldsOf(t, err)["age"]
	if !ok {
		t.Fatal("expected age error")
	}
	if fe.Type != "value_error.number.not_le" {
		t.Errorf("expected value_error.number.not_le, got %q", fe.Type)
	}

	_, err = ParseUser(map[string]any{"name": "Ravi", "email": "ravi@example.com", "address": "MG Road", "age": -1})
	if _, ok := fieldsOf(t, err)["age"]; !ok {
		t.Error("expected negative age to be rejected")
	}
}

func TestParseProduct(t *testing.T) {
	p, err := ParseProduct(map[string]any{"title": "Menu shoot", "price": 0, "category": "photo"})
	if err != nil {
		t.Fatalf("zero price should be valid: %v", err)
	}
	if p.InStock == nil || !*p.InStock {
		t.Error("expected in_stock to default to true")
	}

	_, err = ParseProduct(map[string]any{"title": "Menu shoot", "price": -5, "category": "photo"})
	if _, ok := fieldsOf(t, err)["price"]; !ok {
		t.Error("expected negative price to be rejected")
	}

	_, err = ParseProduct(map[string]any{"title": "Menu shoot", "category": "photo"})
	fe, ok := fieldsOf(t, err)["price"]
	if !ok || fe.Type != "value_error.missing" {
		t.Errorf("expected missing price error, got %+v", fe)
	}
}

func TestParse_DispatchesByKind(t *testing.T) {
	rec, err := Parse(KindInquiry, validInquiry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind() != KindInquiry {
		t.Errorf("expected Inquiry, got %s", rec.Kind())
	}
	if rec.Kind().Collection() != "inquiry" {
		t.Errorf("expected collection inquiry, got %q", rec.Kind().Collection())
	}

	if _, err := Parse(Kind("Invoice"), map[string]any{}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestStatus(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Error("expected archived to be rejected")
	}
	if !StatusWon.Closed() || !StatusLost.Closed() {
		t.Error("won and lost should be closed")
	}
	if StatusNew.Closed() || StatusQuoted.Closed() {
		t.Error("new and quoted should be open")
	}
}

func TestPlatform(t *testing.T) {
	for _, p := range Platforms {
		if _, err := ParsePlatform(string(p)); err != nil {
			t.Errorf("%s should parse: %v", p, err)
		}
	}
	if _, err := ParsePlatform("zomato"); err == nil {
		t.Error("platform should be case sensitive")
	}
}
