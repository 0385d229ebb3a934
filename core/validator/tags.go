package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ErrNotStructPointer is returned by ValidateStruct for anything but a non-nil struct pointer.
var ErrNotStructPointer = errors.New("validator: must pass a pointer to struct")

// ValidatorFunc builds the rule for one tag on one field.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"max":      maxValidator,
		"email":    emailValidator,
	}
)

// RegisterValidator adds or replaces a tag validator.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct checks every field of the struct v points to against its
// `validate` tag, e.g. `validate:"required;max:200"`. Rules are separated by
// ";" and parameters follow ":". Fields are reported under their json name
// when they have one. Unknown rules are ignored.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	var errs ValidationErrors
	validateStruct(rv.Elem(), "", &errs)

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		name := fieldName(sf)
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Kind() == reflect.Pointer && !field.IsNil() {
			field = field.Elem()
		}
		if field.Kind() == reflect.Struct && tag == "" {
			validateStruct(field, name, errs)
			continue
		}
		if tag != "" {
			validateField(name, field, tag, errs)
		}
	}
}

func fieldName(sf reflect.StructField) string {
	if tag := sf.Tag.Get("json"); tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return sf.Name
}

func validateField(name string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, raw := range strings.Split(tag, ";") {
		ruleName, paramStr, _ := strings.Cut(strings.TrimSpace(raw), ":")
		ruleName = strings.TrimSpace(ruleName)
		if ruleName == "" {
			continue
		}

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			params = strings.Split(paramStr, ",")
			for i := range params {
				params[i] = strings.TrimSpace(params[i])
			}
		}

		fn, ok := registry[ruleName]
		if !ok {
			continue
		}
		if rule := fn(name, field, params); !rule.Check() {
			errs.Add(rule.Error)
		}
	}
}

func pass() Rule {
	return Rule{Check: func() bool { return true }}
}

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				return value.IsValid() && !value.IsZero()
			}
		},
		Error: ValidationError{
			Field:          field,
			Message:        "is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 || value.Kind() != reflect.String {
		return pass()
	}
	max, err := strconv.Atoi(params[0])
	if err != nil {
		return pass()
	}
	return MaxLenString(field, value.String(), max)
}

func emailValidator(field string, value reflect.Value, _ []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}
	return ValidEmail(field, value.String())
}
