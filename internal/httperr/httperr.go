package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type StandardError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

type FieldMessage struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

type ValidationError struct {
	StandardError
	Errors []FieldMessage `json:"errors"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, newStandard(c, status, code, message))
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unprocessable(c *gin.Context, fields []FieldMessage) {
	c.JSON(http.StatusUnprocessableEntity, ValidationError{
		StandardError: newStandard(c, http.StatusUnprocessableEntity, CodeValidation, "Dados inválidos"),
		Errors:        fields,
	})
}

func newStandard(c *gin.Context, status int, code, message string) StandardError {
	return StandardError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     code,
		Message:   message,
		Path:      c.Request.URL.Path,
	}
}

// StatusOf maps a business error code to its HTTP status.
func StatusOf(code string) int {
	switch code {
	case CodeClientNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeDatabaseIntegrity, CodeInvalidRequest, CodeInvalidID, CodeInvalidSort:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Binding classifies an error returned by ShouldBindJSON: constraint
// violations pass through untouched, anything else is a malformed body.
func Binding(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return err
	}
	return NewBusiness(CodeInvalidRequest, "Corpo da requisição inválido")
}

// Respond writes the response for err.
func Respond(c *gin.Context, log logrus.FieldLogger, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Unprocessable(c, FieldMessages(ve))
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		Write(c, StatusOf(be.Code), be.Code, be.Message)
		return
	}

	log.WithError(err).
		WithField("path", c.Request.URL.Path).
		Error("unhandled error")
	Internal(c, CodeInternal, "Erro inesperado")
}

// Handler is the single place where errors pushed with c.Error become
// responses. Handlers push and return without writing.
func Handler(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		Respond(c, log, c.Errors.Last().Err)
	}
}

func FieldMessages(ve validator.ValidationErrors) []FieldMessage {
	out := make([]FieldMessage, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldMessage{
			FieldName: fe.Field(),
			Message:   messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo requerido"
	case "max":
		return fmt.Sprintf("Deve ter no máximo %s caracteres", fe.Param())
	case "gte":
		return fmt.Sprintf("Deve ser maior ou igual a %s", fe.Param())
	case "cpf":
		return "CPF deve conter exatamente 11 dígitos"
	case "notfuture":
		return "Data não pode ser futura"
	default:
		return fmt.Sprintf("Valor inválido (%s)", fe.Tag())
	}
}
