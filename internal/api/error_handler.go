package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps router misses and other echo errors onto the {error, message} envelope.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors: unmatched routes, method misses, bind failures.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return http.StatusNotFound, errorResponse{
				Error:   "Rota não encontrada",
				Message: fmt.Sprintf("A rota %s não existe", c.Request().RequestURI),
			}
		case http.StatusUnauthorized:
			return http.StatusUnauthorized, errorResponse{
				Error:   "Token inválido",
				Message: fmt.Sprintf("%v", he.Message),
			}
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests, errorResponse{
				Error:   "Muitas requisições",
				Message: "Limite de requisições excedido, tente novamente mais tarde",
			}
		case http.StatusForbidden:
			return http.StatusForbidden, errorResponse{
				Error:   "Acesso negado",
				Message: fmt.Sprintf("%v", he.Message),
			}
		default:
			if he.Code >= http.StatusInternalServerError {
				return he.Code, errorResponse{
					Error:   "Erro interno do servidor",
					Message: "Não foi possível processar a requisição",
				}
			}
			return he.Code, errorResponse{
				Error:   "Dados inválidos",
				Message: fmt.Sprintf("%v", he.Message),
			}
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Error:   "Erro interno do servidor",
		Message: "Não foi possível processar a requisição",
	}
}
