package handler

import (
	"net/http"

	"holocron/internal/delivery/api/response"
	"holocron/internal/delivery/api/view"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the read-only user, people and planet endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ListUsers handles GET /users
func (h *CatalogHandler) ListUsers(c echo.Context) error {
	users, err := h.catalogUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.Users(users))
}

// ListPeople handles GET /people
func (h *CatalogHandler) ListPeople(c echo.Context) error {
	characters, err := h.catalogUC.ListCharacters(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.Characters(characters))
}

// GetPerson handles GET /people/:id
func (h *CatalogHandler) GetPerson(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidID)
	}

	character, err := h.catalogUC.GetCharacter(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.NewCharacterDetail(character))
}

// ListPlanets handles GET /planets
func (h *CatalogHandler) ListPlanets(c echo.Context) error {
	planets, err := h.catalogUC.ListPlanets(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.Planets(planets))
}

// GetPlanet handles GET /planets/:id
func (h *CatalogHandler) GetPlanet(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidID)
	}

	planet, err := h.catalogUC.GetPlanet(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.NewPlanetDetail(planet))
}
