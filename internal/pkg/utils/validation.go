package utils

import (
	"net/http"

	"clinica-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// DecodeAndValidate parses the JSON body into dst and runs struct
// validation, mapping both failure modes to client-safe errors.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
