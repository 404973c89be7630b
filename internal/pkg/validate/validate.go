package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator. Field names in errors come from
// json tags so messages match the wire format. Any custom registrations must
// be made during init() before the first call to Struct.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// Struct validates the given struct using its validate tags.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// FirstMissing returns the json name of the first field that failed a
// "required" constraint, or "" if err carries no such failure. Field order
// follows struct declaration order, which is the documented check order.
func FirstMissing(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return ""
	}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return fe.Field()
		}
	}
	return ""
}
