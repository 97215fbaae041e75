package handlers

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

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bodyError describes why a request body was rejected.
type bodyError struct {
	Message string
	Fields  map[string]string
}

func (e *bodyError) Error() string { return e.Message }

// decodeAndValidate reads a JSON body into dst and checks its validate tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return &bodyError{Message: "Request body is empty"}
		case errors.As(err, &maxErr):
			return &bodyError{Message: "Request body is too large"}
		case errors.As(err, &typeErr):
			return &bodyError{
				Message: "Invalid request body",
				Fields:  map[string]string{typeErr.Field: fmt.Sprintf("must be %s", typeErr.Type.Kind())},
			}
		default:
			return &bodyError{Message: "Invalid request body"}
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &bodyError{Message: "Invalid request body"}
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldPath(fe)] = describe(fe)
		}
		return &bodyError{Message: "Validation failed", Fields: fields}
	}
	return nil
}

// fieldPath drops the root struct name: "ChatRequest.messages[0].sender" -> "messages[0].sender".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
