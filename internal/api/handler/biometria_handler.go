package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mentoria/fingerprint-api/internal/api/middleware"
	"github.com/mentoria/fingerprint-api/internal/core/domain"
	"github.com/mentoria/fingerprint-api/internal/core/ports"
)

// BiometriaHandler handles HTTP requests for consent-record operations.
type BiometriaHandler struct {
	consentService ports.ConsentService
}

func NewBiometriaHandler(consentService ports.ConsentService) *BiometriaHandler {
	return &BiometriaHandler{consentService: consentService}
}

// subject extracts the verified token subject injected by the Auth middleware.
// Its presence proves the middleware ran.
func subject(c echo.Context) (string, error) {
	sub, _ := c.Get(middleware.SubjectContextKey).(string)
	if sub == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "O token fornecido é inválido ou expirou")
	}
	return sub, nil
}

// Record registers the user's fingerprint-sharing decision.
//
// @Summary      Cadastrar decisão de compartilhamento de fingerprint
// @Description  Registra se o usuário aceitou ou recusou compartilhar sua biometria
// @Tags         biometria
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordFingerprintRequest  true  "Decisão de compartilhamento"
// @Success      201   {object}  consentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /biometria/fingerprint [post]
func (h *BiometriaHandler) Record(c echo.Context) error {
	sub, err := subject(c)
	if err != nil {
		return err
	}

	var req recordFingerprintRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Dados inválidos",
			Message: "compartilhou_fingerprint deve ser um valor booleano (true ou false)",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Dados inválidos",
			Message: "user_id e compartilhou_fingerprint são obrigatórios",
		})
	}
	if strings.TrimSpace(req.UserID) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Dados inválidos",
			Message: "user_id deve ser uma string não vazia",
		})
	}

	rec, err := h.consentService.Record(c.Request().Context(), ports.RecordConsentInput{
		Subject: sub,
		UserID:  req.UserID,
		Shared:  *req.Shared,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, errorResponse{
				Error:   "Acesso negado",
				Message: "Você só pode cadastrar biometria para seu próprio usuário",
			})
		}
		return err
	}

	return c.JSON(http.StatusCreated, consentResponse{
		Message: "Decisão de compartilhamento cadastrada com sucesso",
		Data:    toConsentData(rec),
	})
}

// Get returns the user's recorded fingerprint-sharing decision.
//
// @Summary      Consultar decisão de compartilhamento de fingerprint
// @Description  Consulta se o usuário aceitou ou recusou compartilhar sua biometria
// @Tags         biometria
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "ID único do usuário"
// @Success      200      {object}  consentResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /biometria/fingerprint/{user_id} [get]
func (h *BiometriaHandler) Get(c echo.Context) error {
	sub, err := subject(c)
	if err != nil {
		return err
	}

	userID := c.Param("user_id")

	rec, err := h.consentService.Get(c.Request().Context(), ports.GetConsentInput{
		Subject: sub,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, errorResponse{
				Error:   "Acesso negado",
				Message: "Você só pode consultar biometria do seu próprio usuário",
			})
		}
		if errors.Is(err, domain.ErrConsentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "Usuário não encontrado",
				Message: "Não foi encontrada decisão de compartilhamento para este usuário",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, consentResponse{
		Message: "Decisão consultada com sucesso",
		Data:    toConsentData(rec),
	})
}
