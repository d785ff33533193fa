package common

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// DecodeAndValidate decodes the JSON body into T and runs struct
// validation. On failure it writes the error response itself and returns
// false; handlers just bail out.
func DecodeAndValidate[T any](w http.ResponseWriter, r *http.Request, initTime time.Time) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, initTime, nil, "invalid JSON", http.StatusBadRequest)
		return nil, false
	}

	if err := validate.Struct(&req); err != nil {
		RespondError(w, initTime, nil, formatValidationError(err), http.StatusUnprocessableEntity)
		return nil, false
	}

	return &req, true
}

func formatValidationError(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Field()+": failed '"+e.Tag()+"'")
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
