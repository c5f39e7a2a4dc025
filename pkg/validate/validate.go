package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"alqualis/pkg/faults"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	_ = val.RegisterValidation("notblank", validators.NotBlank)
	// report json names (nome_produtor) instead of Go field names
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return val
}

// Struct checks the `validate` tags of s and returns a faults.ValidationError
// naming the first offending field.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required", "notblank":
			return faults.New(faults.ValidationError, fmt.Sprintf("%s is required", fe.Field()))
		}
		return faults.New(faults.ValidationError, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return faults.Wrap(faults.ValidationError, "invalid input", err)
}
