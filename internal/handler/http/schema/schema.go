// Package schema validates JSON request bodies against tagged Go structs
// before they reach a handler. Every violation is collected, not just the
// first one, and reported with a field-quoted message such as
// `"title" is required`.
//
// Fields are matched by their json tag. Supported field types are string,
// bool, numbers and Date; `validate` tags are evaluated with
// go-playground/validator.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violations lists every problem found in a request body.
type Violations []string

// Error joins the violations the way they are reported to clients.
func (v Violations) Error() string {
	return strings.Join(v, ". ")
}

var (
	validate = newValidator()
	dateType = reflect.TypeOf(Date{})
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return jsonName(f)
	})
	return v
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

type member struct {
	key string
	raw json.RawMessage
}

type field struct {
	name  string
	index int
}

// Decode validates body against the struct dst points to and fills it in.
// An empty body is treated as an empty object. The returned error is a
// Violations value when the body does not match the schema.
func Decode(body []byte, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("schema: Decode needs a pointer to a struct, got %T", dst)
	}
	target := rv.Elem()

	members, ok := readObject(body)
	if !ok {
		return Violations{`"value" must be of type object`}
	}

	fields := structFields(target.Type())
	known := make(map[string]bool, len(fields))
	present := make(map[string]bool, len(members))
	typeErrs := make(map[string]string)

	byKey := make(map[string]json.RawMessage, len(members))
	for _, m := range members {
		byKey[m.key] = m.raw
		present[m.key] = true
	}

	for _, f := range fields {
		known[f.name] = true
		raw, ok := byKey[f.name]
		if !ok {
			continue
		}
		if msg := assign(target.Field(f.index), raw); msg != "" {
			typeErrs[f.name] = quote(f.name) + " " + msg
		}
	}

	ruleErrs := make(map[string]string)
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("schema: validate: %w", err)
		}
		for _, fe := range fieldErrs {
			name := fe.Field()
			if _, dup := ruleErrs[name]; dup {
				continue
			}
			ruleErrs[name] = quote(name) + " " + ruleMessage(fe, present[name])
		}
	}

	var violations Violations
	for _, f := range fields {
		if msg, ok := typeErrs[f.name]; ok {
			violations = append(violations, msg)
		} else if msg, ok := ruleErrs[f.name]; ok {
			violations = append(violations, msg)
		}
	}
	for _, m := range members {
		if !known[m.key] {
			violations = append(violations, quote(m.key)+" is not allowed")
		}
	}

	if len(violations) > 0 {
		return violations
	}
	return nil
}

// readObject splits a JSON object into its members in document order.
func readObject(body []byte) ([]member, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, true
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, false
	}

	var members []member
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		// last duplicate wins, as with JSON.parse
		if i, dup := seen[key]; dup {
			members[i].raw = raw
			continue
		}
		seen[key] = len(members)
		members = append(members, member{key: key, raw: raw})
	}
	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		return nil, false
	}
	if _, err := dec.Token(); err == nil {
		// trailing data after the object
		return nil, false
	}
	return members, true
}

func structFields(t reflect.Type) []field {
	fields := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		if name == "" {
			continue
		}
		fields = append(fields, field{name: name, index: i})
	}
	return fields
}

// assign decodes raw into v and returns a type violation message, or "".
func assign(v reflect.Value, raw json.RawMessage) string {
	isNull := bytes.Equal(bytes.TrimSpace(raw), []byte("null"))

	t := v.Type()
	if t.Kind() == reflect.Pointer {
		if isNull {
			return typeMessage(t.Elem())
		}
		elem := reflect.New(t.Elem())
		if msg := assign(elem.Elem(), raw); msg != "" {
			return msg
		}
		v.Set(elem)
		return ""
	}

	if t == dateType {
		var d Date
		if err := d.UnmarshalJSON(raw); err != nil {
			return typeMessage(t)
		}
		v.Set(reflect.ValueOf(d))
		return ""
	}

	if isNull {
		return typeMessage(t)
	}

	switch t.Kind() {
	case reflect.String:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return typeMessage(t)
		}
		v.SetString(s)
	case reflect.Bool:
		b, ok := parseBool(raw)
		if !ok {
			return typeMessage(t)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return typeMessage(t)
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return typeMessage(t)
		}
		v.SetFloat(f)
	default:
		if err := json.Unmarshal(raw, v.Addr().Interface()); err != nil {
			return typeMessage(t)
		}
	}
	return ""
}

// parseBool accepts JSON booleans and the strings "true"/"false" in any case.
func parseBool(raw json.RawMessage) (bool, bool) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, false
	}
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func typeMessage(t reflect.Type) string {
	if t == dateType {
		return "must be a valid date"
	}
	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	default:
		return "must be of type " + t.Kind().String()
	}
}

// ruleMessage phrases a failed validate tag.
func ruleMessage(fe validator.FieldError, present bool) string {
	switch fe.Tag() {
	case "required":
		if present {
			return "is not allowed to be empty"
		}
		return "is required"
	case "min":
		return fmt.Sprintf("length must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("length must be less than or equal to %s characters long", fe.Param())
	case "oneof":
		return "must be one of [" + strings.Join(strings.Fields(fe.Param()), ", ") + "]"
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("must satisfy %s %s", fe.Tag(), fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func quote(name string) string {
	return strconv.Quote(name)
}
