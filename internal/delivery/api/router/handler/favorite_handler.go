package handler

import (
	"net/http"

	"holocron/internal/delivery/api/response"
	"holocron/internal/delivery/api/view"
	deliverycontext "holocron/internal/delivery/context"
	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	descriptionAdded   = "Succesfully added a favorite"
	descriptionDeleted = "Succesfully deleted a favorite"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
}

// FavoriteHandler serves the favorites endpoints. Every route expects the
// identity middleware to have resolved the acting user.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: params.FavoriteUC}
}

// ListFavorites handles GET /users/favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	set, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Favorites(c, http.StatusOK, view.Characters(set.Characters), view.Planets(set.Planets))
}

// AddFavorite handles POST /favorite/:kind/:id
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	target, err := parseFavoriteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.favoriteUC.AddFavorite(c.Request().Context(), target.userID, target.kind, target.targetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Description(c, http.StatusOK, descriptionAdded)
}

// RemoveFavorite handles DELETE /favorite/:kind/:id
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	target, err := parseFavoriteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), target.userID, target.kind, target.targetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Description(c, http.StatusOK, descriptionDeleted)
}

type favoriteTarget struct {
	userID   uint
	kind     entity.FavoriteKind
	targetID uint
}

func parseFavoriteTarget(c echo.Context) (favoriteTarget, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return favoriteTarget{}, domainerrors.ErrUnauthorized
	}

	kind, ok := entity.ParseFavoriteKind(c.Param("kind"))
	if !ok {
		return favoriteTarget{}, domainerrors.ErrInvalidFavoriteKind
	}

	targetID, ok := pathID(c)
	if !ok {
		return favoriteTarget{}, domainerrors.ErrInvalidID
	}

	return favoriteTarget{userID: userID, kind: kind, targetID: targetID}, nil
}
