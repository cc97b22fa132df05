package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SubjectContextKey is where Auth stores the verified token subject.
const SubjectContextKey = "user_id"

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Auth validates the bearer token and injects the subject into context.
// Malformed, tampered, and expired tokens all produce the same 401 envelope:
// the outward signal deliberately does not say which case occurred.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Error:   "Token não fornecido",
					Message: "É necessário fornecer um token de autenticação no cabeçalho Authorization",
				})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Error:   "Token não fornecido",
					Message: "É necessário fornecer um token de autenticação no cabeçalho Authorization",
				})
			}

			claims := jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid || claims.Subject == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Error:   "Token inválido",
					Message: "O token fornecido é inválido ou expirou",
				})
			}

			c.Set(SubjectContextKey, claims.Subject)

			return next(c)
		}
	}
}
