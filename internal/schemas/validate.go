package schemas

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SchemaKey holds errors that are not tied to a single field.
const SchemaKey = "_schema"

// Error messages reported per field.
const (
	MsgRequired    = "Missing data for required field."
	MsgNull        = "Field may not be null."
	MsgUnknown     = "Unknown field."
	MsgInvalidBody = "Invalid input type."
	MsgInvalid     = "Invalid value."
)

// Errors maps a field name to its validation messages.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Load decodes body into a new T and validates it. On failure the returned
// error is of type Errors.
func Load[T any](body []byte) (*T, error) {
	raw, err := decodeRaw(body)
	if err != nil {
		return nil, err
	}

	var dst T
	v := reflect.ValueOf(&dst).Elem()
	t := v.Type()

	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" {
			fields[name] = i
		}
	}

	errs := Errors{}
	for key, value := range raw {
		idx, ok := fields[key]
		if !ok {
			errs.add(key, MsgUnknown)
			continue
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			errs.add(key, MsgNull)
			continue
		}
		field := v.Field(idx)
		if err := json.Unmarshal(value, field.Addr().Interface()); err != nil {
			field.Set(reflect.Zero(field.Type()))
			errs.add(key, typeMessage(field.Type()))
		}
	}

	if err := validate.Struct(&dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			if _, seen := errs[fe.Field()]; seen {
				continue
			}
			errs.add(fe.Field(), ruleMessage(fe))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &dst, nil
}

// LoadPartial decodes a partial update body against the fields of T. Keys
// T does not declare are dropped; declared keys must carry a non-null value
// of the declared type. The returned map holds plain values keyed by JSON name.
func LoadPartial[T any](body []byte) (map[string]any, error) {
	raw, err := decodeRaw(body)
	if err != nil {
		return nil, err
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" {
			ft := t.Field(i).Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			fields[name] = ft
		}
	}

	errs := Errors{}
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		ft, ok := fields[key]
		if !ok {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			errs.add(key, MsgNull)
			continue
		}
		dst := reflect.New(ft)
		if err := json.Unmarshal(value, dst.Interface()); err != nil {
			errs.add(key, typeMessage(ft))
			continue
		}
		out[key] = dst.Elem().Interface()
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func decodeRaw(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, Errors{SchemaKey: {MsgInvalidBody}}
	}
	return raw, nil
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "Not a valid string."
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Not a valid integer."
	case reflect.Bool:
		return "Not a valid boolean."
	case reflect.Float32, reflect.Float64:
		return "Not a valid number."
	default:
		return MsgInvalid
	}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "min":
		return "Shorter than minimum length " + fe.Param() + "."
	case "max":
		return "Longer than maximum length " + fe.Param() + "."
	default:
		return MsgInvalid
	}
}
