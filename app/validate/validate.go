package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to its list of failure messages, matching the
// {"field": ["message", ...]} shape clients of this API already parse.
type Errors map[string][]string

var v = newValidator()

func newValidator() *validator.Validate {
	vd := validator.New(validator.WithRequiredStructEnabled())
	vd.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return vd
}

// Struct validates req and returns nil when every rule passes.
func Struct(req any) Errors {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	errs := Errors{}
	for _, fe := range err.(validator.ValidationErrors) {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func message(fe validator.FieldError) string {
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", label)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", label, fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", label)
	}
}
