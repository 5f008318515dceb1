package middleware

import (
	"io"
	"strings"

	"holocron/config"
	"holocron/internal/delivery/api/response"
	"holocron/internal/delivery/api/validator"
	deliverycontext "holocron/internal/delivery/context"
	"holocron/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// IdentityRequest is the legacy body that names the acting user.
type IdentityRequest struct {
	ID *uint `json:"id" validate:"required"`
}

// IdentityMiddleware resolves the user a request acts on behalf of.
//
// A bearer token always wins over the body. Without a token the body `id`
// is used unless auth.requireToken is set.
type IdentityMiddleware struct {
	authUC       usecase.AuthUsecase
	requireToken bool
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *IdentityMiddleware {
	return &IdentityMiddleware{
		authUC:       authUC,
		requireToken: cfg.Auth.RequireToken,
	}
}

// Resolve sets the acting user id on the echo and request contexts.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

		var userID uint
		switch {
		case authHeader != "":
			tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
			if tokenString == authHeader || tokenString == "" {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
			}

			id, err := m.authUC.Authenticate(c.Request().Context(), tokenString)
			if err != nil {
				return response.HandleAppError(c, err)
			}
			userID = id

		case m.requireToken:
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")

		default:
			// GET requests carry the body too, so the JSON serializer is used
			// directly instead of c.Bind.
			var req IdentityRequest
			if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil && !errors.Is(err, io.EOF) {
				return response.BadRequest(c, "INVALID_INPUT", "Request body must be a JSON object with a numeric id")
			}

			if err := c.Validate(&req); err != nil {
				return response.BadRequestWithDetails(c, "VALIDATION_FAILED", validator.Message(err), validator.FieldErrors(err))
			}
			userID = *req.ID
		}

		deliverycontext.SetUserID(c, userID)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), userID)))

		return next(c)
	}
}
