package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return v
}

// DecodeError reports a request body that is not valid JSON for the
// target.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Bind decodes the JSON body of r into v and validates it against its
// `validate` tags. Validation failures are returned as
// validator.ValidationErrors.
func Bind(r *http.Request, v any) error {
	if r.Body == nil {
		return &DecodeError{Err: io.EOF}
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &DecodeError{Err: err}
	}

	if !isStruct(v) {
		return nil
	}
	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}
		return err
	}
	return nil
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}
