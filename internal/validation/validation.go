package validation

import (
	"encoding/json" // For recognizing JSON type errors
	"errors"        // For error unwrapping
	"reflect"       // For reading struct json tags
	"strings"       // For tag name splitting

	"github.com/gin-gonic/gin/binding"       // Gin's binding engine
	"github.com/go-playground/validator/v10" // Validator backing gin's binding tags
)

// Init configures gin's validator to report fields by their json tag name,
// so validation errors are keyed the same way clients submitted them.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Messages converts a binding error into a field → messages mapping.
// All detected errors are reported together, never just the first.
// The second return value is false when err is not a field-level error.
func Messages(err error) (map[string][]string, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string][]string)
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], message(fe))
		}
		return out, true
	}
	// A type mismatch in the JSON body (e.g. a string price) is still a
	// field-level problem worth naming.
	var terr *json.UnmarshalTypeError
	if errors.As(err, &terr) && terr.Field != "" {
		return map[string][]string{terr.Field: {"Not a valid " + terr.Type.Kind().String() + "."}}, true
	}
	return nil, false
}

// message renders a single human-readable message for a failed rule
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "max":
		return "Longer than maximum length " + fe.Param() + "."
	case "email":
		return "Not a valid email address."
	case "gte":
		return "Must be greater than or equal to " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}
