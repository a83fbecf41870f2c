package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed constraint. Loc is the path to the
// offending value, starting with "body".
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StructValidator satisfies gin's binding.StructValidator so request
// binding and Parse share one set of rules.
type StructValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var defaultValidator = &StructValidator{}

// Validator returns the process-wide validator. Install it with
// binding.Validator = models.Validator().
func Validator() *StructValidator { return defaultValidator }

func (v *StructValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

func (v *StructValidator) Engine() any {
	v.lazyinit()
	return v.validate
}

func (v *StructValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("binding")
		v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// Validate checks a schema value and returns a *ValidationError on failure.
func Validate(obj any) error {
	if err := defaultValidator.ValidateStruct(obj); err != nil {
		return NewValidationError(err)
	}
	return nil
}

func decode(raw map[string]any, dst any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return NewValidationError(err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return NewValidationError(err)
	}
	return nil
}

// NewValidationError converts validator and JSON decoding failures into
// field-level detail.
func NewValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
		for _, fe := range fieldErrs {
			out.Fields = append(out.Fields, translate(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		name := typeName(typeErr.Type)
		return &ValidationError{Fields: []FieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("value is not a valid %s", name),
			Type: "type_error." + name,
		}}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ValidationError{Fields: []FieldError{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body",
			Type: "value_error.jsondecode",
		}}}
	}

	return &ValidationError{Fields: []FieldError{{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "value_error",
	}}}
}

func translate(fe validator.FieldError) FieldError {
	out := FieldError{Loc: []string{"body", fe.Field()}}
	switch fe.Tag() {
	case "required":
		out.Msg, out.Type = "field required", "value_error.missing"
	case "email":
		out.Msg, out.Type = "value is not a valid email address", "value_error.email"
	case "oneof":
		permitted := strings.Fields(fe.Param())
		for i, p := range permitted {
			permitted[i] = "'" + p + "'"
		}
		out.Msg = "unexpected value; permitted: " + strings.Join(permitted, ", ")
		out.Type = "value_error.const"
	case "min", "gte":
		out.Msg = "ensure this value is greater than or equal to " + fe.Param()
		out.Type = "value_error.number.not_ge"
	case "max", "lte":
		out.Msg = "ensure this value is less than or equal to " + fe.Param()
		out.Type = "value_error.number.not_le"
	default:
		out.Msg = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		out.Type = "value_error"
	}
	return out
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "str"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Bool:
		return "bool"
	default:
		return "value"
	}
}
