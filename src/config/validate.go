package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their config file key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("localpath", func(fl validator.FieldLevel) bool {
		return filepath.IsLocal(fl.Field().String())
	})
	_ = v.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
		return validPolicies[Policy(fl.Field().String())]
	})
	return v
}

// Validate checks structural invariants of a loaded Config.
// Every problem found is reported in a single error.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: must not be empty", fe.Field())
	case "localpath":
		return fmt.Sprintf("%s: %q must be a relative path inside the runner temp dir", fe.Field(), fe.Value())
	case "policy":
		return fmt.Sprintf("%s: unknown policy %q (supported: %s)", fe.Field(), fe.Value(), policyNames())
	default:
		return fmt.Sprintf("%s: failed %s check", fe.Field(), fe.Tag())
	}
}

func policyNames() string {
	names := make([]string, 0, len(validPolicies))
	for p := range validPolicies {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
