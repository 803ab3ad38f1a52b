package handlers

import (
	stderrors "errors"

	"finance-control/internal/errors"
	"finance-control/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a validator carrying the ledger rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// tagCodes picks the response code for the first failing rule
var tagCodes = map[string]errors.ErrorCode{
	"required":         errors.ValidationRequiredField,
	"email":            errors.ValidationInvalidEmail,
	"min":              errors.ValidationOutOfRange,
	"max":              errors.ValidationOutOfRange,
	"identifier":       errors.ValidationInvalidIdentifier,
	"account_type":     errors.AccountInvalidType,
	"transaction_type": errors.TransactionInvalidType,
	"positive_amount":  errors.TransactionInvalidAmount,
}

func validationCode(err error) errors.ErrorCode {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errors.ValidationGeneral
	}

	if code, ok := tagCodes[validationErrors[0].Tag()]; ok {
		return code
	}
	return errors.ValidationGeneral
}

func sendValidationError(c echo.Context, err error) error {
	return SendError(c, validationCode(err), errors.WithDetails(validation.FormatErrors(err)...))
}

// bind decodes and validates the request body. When ok is false the error
// response has already been written and err is the result of writing it.
func bind(c echo.Context, req interface{}) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationMalformedBody,
			errors.WithDetails("request body must be a JSON object matching the procedure"))
	}

	if err := c.Validate(req); err != nil {
		return false, sendValidationError(c, err)
	}

	return true, nil
}
