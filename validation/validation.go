// Package validation holds the pure, side-effect-free field validation for
// every request payload. Each payload type carries validator tags and a
// Validate method returning either nil or an *errs.ApiErr with the ordered
// list of human-readable violation messages. Uniqueness and referential
// checks need a store round trip and live in the controllers instead.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/janedoe-dev/portfolio-api/errs"
)

// urlPattern mirrors the wire contract: http(s) scheme plus a domain-like
// segment. Deliberately looser than a full URL parse.
var urlPattern = regexp.MustCompile(`^https?://.+\..+`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their wire names, not Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return urlPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct runs the tag rules against payload and folds every violation into a
// single validation fault, preserving field declaration order.
func Struct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewInternalError(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}
	return errs.NewValidationError(messages...)
}

// messageFor renders one violation the way the API has always phrased them.
func messageFor(fe validator.FieldError) string {
	field := displayName(wireName(fe))

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s cannot be negative", field)
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "httpurl":
		return "Please enter a valid URL"
	case "uuid":
		return fmt.Sprintf("%s must be a valid ID", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// wireName returns the field's dotted wire path without the payload type
// prefix, so a nested violation reads "nameLink.url" rather than "url".
func wireName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// displayName turns a wire field name like "yearsOfExperience" into
// "Years of experience" for message text.
func displayName(field string) string {
	// Nested fields arrive as "nameLink.url"; keep only the leaf's parent
	// context readable by joining with a space.
	field = strings.ReplaceAll(field, ".", " ")

	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}

	out := b.String()
	return strings.ToUpper(out[:1]) + out[1:]
}
