package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "addressable/internal/delivery/api/middleware"
	"addressable/internal/delivery/api/validator"
	"addressable/internal/domain/entity"
	domainerrors "addressable/internal/domain/errors"
	mockUsecase "addressable/internal/mocks/usecase"
	"addressable/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockAddressUsecase) {
	addressUC := mockUsecase.NewMockAddressUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	owners := e.Group("/api/v1/owners/:ownerType/:ownerId")
	owners.GET("/addresses", h.ListAddresses)
	owners.POST("/addresses", h.CreateAddress)
	owners.DELETE("/addresses/:id", h.DeleteAddress)
	owners.GET("/addresses/representative", h.Representative)
	e.GET("/api/v1/addresses/nearby", h.FindNearbyOwners)

	return e, addressUC
}

func serve(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func TestAddressHandler_CreateAddress(t *testing.T) {
	e, addressUC := newTestEcho(t)
	ownerID := uuid.New()
	owner := entity.NewOwnerRef(entity.OwnerTypeUser, ownerID)

	addressUC.EXPECT().
		AddAddress(mock.Anything, owner, mock.MatchedBy(func(in *usecase.AddressInput) bool {
			return in.Line1 != nil && *in.Line1 == "1 Main St" &&
				in.Flags[entity.FlagPrimary] &&
				in.Line2 == nil
		})).
		Return(&entity.Address{ID: uuid.New(), Owner: owner, Line1: "1 Main St", IsPrimary: true}, nil)

	rec, env := serve(e, http.MethodPost, "/api/v1/owners/user/"+ownerID.String()+"/addresses",
		`{"line_1":"1 Main St","city":"Springfield","is_primary":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got AddressResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "user", got.OwnerType)
	assert.Equal(t, ownerID, got.OwnerID)
	assert.True(t, got.IsPrimary)
}

func TestAddressHandler_CreateAddress_ValidationError(t *testing.T) {
	e, addressUC := newTestEcho(t)
	ownerID := uuid.New()

	addressUC.EXPECT().
		AddAddress(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError([]string{"The line_1 field is required."}))

	rec, env := serve(e, http.MethodPost, "/api/v1/owners/user/"+ownerID.String()+"/addresses", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, []any{"The line_1 field is required."}, env.Error.Details)
}

func TestAddressHandler_InvalidOwnerID(t *testing.T) {
	e, _ := newTestEcho(t)

	rec, env := serve(e, http.MethodGet, "/api/v1/owners/user/not-a-uuid/addresses", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_OWNER", env.Error.Code)
}

func TestAddressHandler_ListAddresses_Filters(t *testing.T) {
	e, addressUC := newTestEcho(t)
	ownerID := uuid.New()
	owner := entity.NewOwnerRef(entity.OwnerTypeMerchant, ownerID)

	addressUC.EXPECT().
		Addresses(mock.Anything, owner, usecase.AddressFilter{Flag: entity.FlagBilling, CountryCode: "DE", IncludeDeleted: true}).
		Return([]*entity.Address{{ID: uuid.New(), Owner: owner}}, nil)

	rec, env := serve(e, http.MethodGet,
		"/api/v1/owners/merchant/"+ownerID.String()+"/addresses?flag=billing&country=DE&withDeleted=true", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []AddressResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 1)
}

func TestAddressHandler_ListAddresses_RejectsUnknownFlag(t *testing.T) {
	e, _ := newTestEcho(t)

	rec, env := serve(e, http.MethodGet, "/api/v1/owners/user/"+uuid.NewString()+"/addresses?flag=gift", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestAddressHandler_Representative_DefaultsToPrimary(t *testing.T) {
	e, addressUC := newTestEcho(t)
	ownerID := uuid.New()

	addressUC.EXPECT().
		Representative(mock.Anything, entity.NewOwnerRef(entity.OwnerTypeUser, ownerID), entity.FlagPrimary).
		Return(nil, nil)

	rec, env := serve(e, http.MethodGet, "/api/v1/owners/user/"+ownerID.String()+"/addresses/representative", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(env.Data))
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	e, addressUC := newTestEcho(t)
	ownerID := uuid.New()
	id := uuid.New()

	addressUC.EXPECT().
		DeleteAddress(mock.Anything, entity.NewOwnerRef(entity.OwnerTypeUser, ownerID), id).
		Return(int64(0), nil)

	rec, env := serve(e, http.MethodDelete, "/api/v1/owners/user/"+ownerID.String()+"/addresses/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rows":0}`, string(env.Data))
}

func TestAddressHandler_UnknownOwnerType(t *testing.T) {
	e, addressUC := newTestEcho(t)
	ownerID := uuid.New()

	addressUC.EXPECT().
		Addresses(mock.Anything, entity.NewOwnerRef("vendor", ownerID), usecase.AddressFilter{}).
		Return(nil, domainerrors.ErrUnknownOwnerType.WithDetails("vendor"))

	rec, env := serve(e, http.MethodGet, "/api/v1/owners/vendor/"+ownerID.String()+"/addresses", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_OWNER_TYPE", env.Error.Code)
	assert.Equal(t, "vendor", env.Error.Details)
}

func TestAddressHandler_FindNearbyOwners(t *testing.T) {
	e, addressUC := newTestEcho(t)
	owner := entity.NewOwnerRef(entity.OwnerTypeMerchant, uuid.New())

	addressUC.EXPECT().
		FindOwnersByDistance(mock.Anything, usecase.ProximityQuery{
			Distance:  5,
			Unit:      entity.UnitKilometers,
			Latitude:  52.52,
			Longitude: 13.405,
		}).
		Return([]entity.OwnerRef{owner}, nil)

	rec, env := serve(e, http.MethodGet, "/api/v1/addresses/nearby?distance=5&unit=kilometers&lat=52.52&lng=13.405", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []OwnerResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "merchant", got[0].Type)
	assert.Equal(t, owner.ID, got[0].ID)
}

func TestAddressHandler_FindNearbyOwners_MissingParams(t *testing.T) {
	e, _ := newTestEcho(t)

	rec, env := serve(e, http.MethodGet, "/api/v1/addresses/nearby?distance=5", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAddressHandler_StorageErrorIsHidden(t *testing.T) {
	e, addressUC := newTestEcho(t)
	ownerID := uuid.New()

	addressUC.EXPECT().
		Addresses(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "select failed"))

	rec, env := serve(e, http.MethodGet, "/api/v1/owners/user/"+ownerID.String()+"/addresses", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}
