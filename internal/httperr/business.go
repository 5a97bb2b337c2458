package httperr

import "errors"

const (
	CodeClientNotFound    = "client_not_found"
	CodeDatabaseIntegrity = "database_integrity"
	CodeValidation        = "validation_failed"
	CodeInvalidRequest    = "invalid_request"
	CodeInvalidID         = "invalid_id"
	CodeInvalidSort       = "invalid_sort"
	CodeInternal          = "internal_error"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

var (
	ErrClientNotFound = BusinessError{
		Code:    CodeClientNotFound,
		Message: "Cliente não foi encontrado!",
	}

	ErrDatabaseIntegrity = BusinessError{
		Code:    CodeDatabaseIntegrity,
		Message: "Falha de integridade referencial",
	}
)

func NewBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
