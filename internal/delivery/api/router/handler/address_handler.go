package handler

import (
	"log/slog"
	"net/http"
	"time"

	"addressable/internal/delivery/api/response"
	"addressable/internal/domain/entity"
	"addressable/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the owner-scoped address endpoints.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest is the body of create and update. Omitted fields are left untouched.
type AddressRequest struct {
	Label        *string        `json:"label"`
	GivenName    *string        `json:"given_name"`
	FamilyName   *string        `json:"family_name"`
	Organization *string        `json:"organization"`
	Line1        *string        `json:"line_1"`
	Line2        *string        `json:"line_2"`
	City         *string        `json:"city"`
	Province     *string        `json:"province"`
	PostalCode   *string        `json:"postal_code"`
	CountryCode  *string        `json:"country_code"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	Extra        map[string]any `json:"extra" validate:"omitempty,max=50"`
	IsPrimary    *bool          `json:"is_primary"`
	IsBilling    *bool          `json:"is_billing"`
	IsShipping   *bool          `json:"is_shipping"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	input := &usecase.AddressInput{
		Label:        r.Label,
		GivenName:    r.GivenName,
		FamilyName:   r.FamilyName,
		Organization: r.Organization,
		Line1:        r.Line1,
		Line2:        r.Line2,
		City:         r.City,
		Province:     r.Province,
		PostalCode:   r.PostalCode,
		CountryCode:  r.CountryCode,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Extra:        r.Extra,
	}

	flags := map[entity.Flag]*bool{
		entity.FlagPrimary:  r.IsPrimary,
		entity.FlagBilling:  r.IsBilling,
		entity.FlagShipping: r.IsShipping,
	}
	for flag, value := range flags {
		if value == nil {
			continue
		}
		if input.Flags == nil {
			input.Flags = make(map[entity.Flag]bool)
		}
		input.Flags[flag] = *value
	}

	return input
}

// ListAddressesRequest holds the list filters.
type ListAddressesRequest struct {
	Flag        string `query:"flag" validate:"omitempty,oneof=primary billing shipping"`
	Country     string `query:"country" validate:"omitempty,len=2,alpha"`
	WithDeleted bool   `query:"withDeleted"`
}

// AddressResponse is the API form of an address.
type AddressResponse struct {
	ID           uuid.UUID      `json:"id"`
	OwnerType    string         `json:"owner_type"`
	OwnerID      uuid.UUID      `json:"owner_id"`
	Label        string         `json:"label"`
	GivenName    string         `json:"given_name"`
	FamilyName   string         `json:"family_name"`
	Organization string         `json:"organization"`
	Line1        string         `json:"line_1"`
	Line2        string         `json:"line_2"`
	City         string         `json:"city"`
	Province     string         `json:"province"`
	PostalCode   string         `json:"postal_code"`
	CountryCode  string         `json:"country_code"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	Extra        map[string]any `json:"extra,omitempty"`
	IsPrimary    bool           `json:"is_primary"`
	IsBilling    bool           `json:"is_billing"`
	IsShipping   bool           `json:"is_shipping"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty"`
}

func toAddressResponse(a *entity.Address) *AddressResponse {
	if a == nil {
		return nil
	}

	return &AddressResponse{
		ID:           a.ID,
		OwnerType:    a.Owner.Type.String(),
		OwnerID:      a.Owner.ID,
		Label:        a.Label,
		GivenName:    a.GivenName,
		FamilyName:   a.FamilyName,
		Organization: a.Organization,
		Line1:        a.Line1,
		Line2:        a.Line2,
		City:         a.City,
		Province:     a.Province,
		PostalCode:   a.PostalCode,
		CountryCode:  a.CountryCode,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		Extra:        a.Extra,
		IsPrimary:    a.IsPrimary,
		IsBilling:    a.IsBilling,
		IsShipping:   a.IsShipping,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		DeletedAt:    a.DeletedAt,
	}
}

func toAddressResponses(addresses []*entity.Address) []*AddressResponse {
	out := make([]*AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toAddressResponse(a))
	}

	return out
}

// OwnerResponse identifies an owner, with the resolved entity when requested.
type OwnerResponse struct {
	Type  string    `json:"type"`
	ID    uuid.UUID `json:"id"`
	Owner any       `json:"owner,omitempty"`
}

// ownerRef reads the owner from the :ownerType and :ownerId path segments.
// Registration of the type is checked by the usecase.
func ownerRef(c echo.Context) (entity.OwnerRef, bool) {
	id, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return entity.OwnerRef{}, false
	}

	return entity.NewOwnerRef(entity.ParseOwnerType(c.Param("ownerType")), id), true
}

func addressID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

// ListAddresses handles GET /owners/:ownerType/:ownerId/addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}

	var req ListAddressesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address filter")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	addresses, err := h.addressUC.Addresses(c.Request().Context(), owner, usecase.AddressFilter{
		Flag:           entity.Flag(req.Flag),
		CountryCode:    req.Country,
		IncludeDeleted: req.WithDeleted,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses))
}

// HasAddresses handles GET /owners/:ownerType/:ownerId/addresses/exists
func (h *AddressHandler) HasAddresses(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}

	exists, err := h.addressUC.HasAddresses(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists})
}

// CreateAddress handles POST /owners/:ownerType/:ownerId/addresses
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), owner, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

// UpdateAddress handles PUT /owners/:ownerType/:ownerId/addresses/:id
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}
	id, ok := addressID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), owner, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// Representative handles GET /owners/:ownerType/:ownerId/addresses/representative?role=
func (h *AddressHandler) Representative(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}

	role := entity.FlagPrimary
	if raw := c.QueryParam("role"); raw != "" {
		role = entity.Flag(raw)
	}

	address, err := h.addressUC.Representative(c.Request().Context(), owner, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// FlaggedAddress handles GET /owners/:ownerType/:ownerId/addresses/flagged/:flag?direction=
func (h *AddressHandler) FlaggedAddress(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}

	address, err := h.addressUC.FlaggedAddress(
		c.Request().Context(),
		owner,
		entity.Flag(c.Param("flag")),
		entity.SortDirection(c.QueryParam("direction")),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// FormatAddress handles GET /owners/:ownerType/:ownerId/addresses/:id/formatted
func (h *AddressHandler) FormatAddress(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}
	id, ok := addressID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	formatted, err := h.addressUC.Format(c.Request().Context(), owner, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, formatted)
}

// DeleteAddress handles DELETE /owners/:ownerType/:ownerId/addresses/:id
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}
	id, ok := addressID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	rows, err := h.addressUC.DeleteAddress(c.Request().Context(), owner, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.RowsAffected{Rows: rows})
}

// RestoreAddress handles POST /owners/:ownerType/:ownerId/addresses/:id/restore
func (h *AddressHandler) RestoreAddress(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}
	id, ok := addressID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	rows, err := h.addressUC.RestoreAddress(c.Request().Context(), owner, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.RowsAffected{Rows: rows})
}

// FlushAddresses handles DELETE /owners/:ownerType/:ownerId/addresses
func (h *AddressHandler) FlushAddresses(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}

	rows, err := h.addressUC.FlushAddresses(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.RowsAffected{Rows: rows})
}

// PurgeOwner handles DELETE /owners/:ownerType/:ownerId, called once the owner itself is gone.
func (h *AddressHandler) PurgeOwner(c echo.Context) error {
	owner, ok := ownerRef(c)
	if !ok {
		return response.BadRequest(c, "INVALID_OWNER", "Invalid owner ID")
	}

	rows, err := h.addressUC.PurgeOwner(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Owner addresses purged", slog.String("owner", owner.String()), slog.Int64("rows", rows))

	return response.Success(c, http.StatusOK, response.RowsAffected{Rows: rows})
}

// FindNearbyOwners handles GET /addresses/nearby?distance=&unit=&lat=&lng=[&resolve=true]
func (h *AddressHandler) FindNearbyOwners(c echo.Context) error {
	var (
		query   usecase.ProximityQuery
		unit    string
		resolve bool
	)

	err := echo.QueryParamsBinder(c).
		MustFloat64("distance", &query.Distance).
		MustString("unit", &unit).
		MustFloat64("lat", &query.Latitude).
		MustFloat64("lng", &query.Longitude).
		Bool("resolve", &resolve).
		BindError()
	if err != nil {
		return response.BindingError(c, "distance, unit, lat and lng are required numbers")
	}
	query.Unit = entity.DistanceUnit(unit)

	ctx := c.Request().Context()

	refs, err := h.addressUC.FindOwnersByDistance(ctx, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	owners := make([]OwnerResponse, 0, len(refs))
	if !resolve {
		for _, ref := range refs {
			owners = append(owners, OwnerResponse{Type: ref.Type.String(), ID: ref.ID})
		}

		return response.Success(c, http.StatusOK, owners)
	}

	resolved, err := h.addressUC.ResolveOwners(ctx, refs)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	for _, r := range resolved {
		owners = append(owners, OwnerResponse{Type: r.Ref.Type.String(), ID: r.Ref.ID, Owner: r.Owner})
	}

	return response.Success(c, http.StatusOK, owners)
}
