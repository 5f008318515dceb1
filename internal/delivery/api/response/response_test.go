package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "holocron/internal/delivery/context"
	domainerrors "holocron/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, []int{1, 2}))

	body := decode(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", body["response"])
	assert.Equal(t, "200", body["status"])
	assert.Equal(t, []any{float64(1), float64(2)}, body["data"])
}

func TestDescription(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Description(c, http.StatusOK, "Succesfully added a favorite"))

	body := decode(t, rec)
	assert.Equal(t, "Succesfully added a favorite", body["description"])
	assert.NotContains(t, body, "data")
}

func TestFavorites(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Favorites(c, http.StatusOK, []string{}, []string{"Hoth"}))

	body := decode(t, rec)
	assert.Equal(t, []any{}, body["favorite_characters"])
	assert.Equal(t, []any{"Hoth"}, body["favorite_planets"])
}

func TestError(t *testing.T) {
	c, rec := newContext()
	deliverycontext.SetRequestID(c, "req-42")

	require.NoError(t, BadRequestWithDetails(c, "VALIDATION_FAILED", "id is required", map[string]string{"id": "required"}))

	body := decode(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ERROR", body["response"])
	assert.Equal(t, float64(400), body["status"])
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Equal(t, "id is required", body["message"])
	assert.Equal(t, "req-42", body["request_id"])
	assert.NotNil(t, body["details"])
}

func TestError_HidesDetailsForServerErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "boom", "stack trace"))

	body := decode(t, rec)
	assert.NotContains(t, body, "details")
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrPlanetNotFound, "lookup")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PLANET_NOT_FOUND", decode(t, rec)["code"])

	c, _ = newContext()
	err := HandleAppError(c, domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "insert"))
	assert.Error(t, err)
}
