package dto

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/usermanager-backend/internal/domain/errors"
	"github.com/rafabene/usermanager-backend/internal/domain/ports"
)

// ErrorResponse é o corpo de todas as respostas de erro
type ErrorResponse struct {
	Status     string        `json:"status" example:"error"`
	StatusCode int           `json:"statusCode" example:"400"`
	Message    string        `json:"message" example:"Validation failed"`
	Details    []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail descreve uma violação de validação
type ErrorDetail struct {
	Message string `json:"message" example:"email is required"`
	Path    string `json:"path" example:"profile.fullName"`
	Type    string `json:"type" example:"required"`
}

// MessageResponse é uma resposta simples de sucesso
type MessageResponse struct {
	Message string `json:"message"`
}

// ExistsResponse é a resposta das verificações de existência
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// StatusFor é o único ponto que decide o status HTTP de uma falha
func StatusFor(kind domainerrors.Kind) int {
	switch kind {
	case domainerrors.KindValidation, domainerrors.KindConflict:
		return http.StatusBadRequest
	case domainerrors.KindNotFound:
		return http.StatusNotFound
	case domainerrors.KindUnauthorized:
		return http.StatusUnauthorized
	case domainerrors.KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// RespondError traduz qualquer erro em resposta HTTP. Erros sem tipo viram
// 500 e a mensagem nunca expõe detalhes internos.
func RespondError(c *gin.Context, err error) {
	failure := domainerrors.As(err)
	if failure == nil {
		failure = domainerrors.NewUnexpected(err)
	}

	status := StatusFor(failure.Kind)
	response := ErrorResponse{
		Status:     "error",
		StatusCode: status,
		Message:    T(c, failure.MessageKey()),
	}
	if failure.Kind == domainerrors.KindValidation {
		response.Details = toDetails(c, failure.Violations)
	}

	if status >= http.StatusInternalServerError {
		if logger := ports.LoggerFromContext(c.Request.Context(), nil); logger != nil {
			logger.Error("request failed", "kind", failure.Kind, "error", err)
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, response)
}

func toDetails(c *gin.Context, violations []domainerrors.Violation) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(violations))
	for _, v := range violations {
		details = append(details, ErrorDetail{
			Message: TOr(c, "validation."+v.Tag, v.Message, map[string]any{
				"Field": v.Field,
				"Param": v.Param,
			}),
			Path: v.Field,
			Type: v.Type,
		})
	}
	return details
}

// BindJSON decodifica o corpo da requisição. JSON malformado vira falha
// de validação no caminho "body"; tipos incompatíveis apontam o campo.
func BindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domainerrors.NewValidation(domainerrors.Violation{
			Field:   typeErr.Field,
			Type:    domainerrors.ViolationInvalid,
			Message: typeErr.Field + " has an invalid type, expected " + typeErr.Type.String(),
			Tag:     "type",
		})
	}

	message := "request body is not valid JSON"
	if errors.Is(err, io.EOF) {
		message = "request body is required"
	}
	return domainerrors.NewValidation(domainerrors.Violation{
		Field:   "body",
		Type:    domainerrors.ViolationJSON,
		Message: message,
		Tag:     "json",
	})
}
