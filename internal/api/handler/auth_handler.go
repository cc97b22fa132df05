package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
	"github.com/mentoria/fingerprint-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for token issuance.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token authenticates a provisioned user and returns a bearer token.
//
// @Summary      Gerar token de autenticação
// @Description  Autentica o usuário e gera um token JWT válido por 24 horas
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Credenciais do usuário"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Dados inválidos",
			Message: "user_id e senha são obrigatórios",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Dados inválidos",
			Message: err.Error(),
		})
	}
	if strings.TrimSpace(req.UserID) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Dados inválidos",
			Message: "user_id deve ser uma string não vazia",
		})
	}
	if strings.TrimSpace(req.Senha) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Dados inválidos",
			Message: "senha deve ser uma string não vazia",
		})
	}

	token, _, err := h.authService.Authenticate(c.Request().Context(), req.UserID, req.Senha)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Error:   "Credenciais inválidas",
				Message: "Usuário ou senha incorretos",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		Token:   token,
		Message: "Token gerado com sucesso",
	})
}
