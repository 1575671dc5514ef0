// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "addressable/internal/delivery/context"
	"addressable/internal/domain/entity"
	domainerrors "addressable/internal/domain/errors"
	"addressable/internal/domain/repository"
	"addressable/internal/domain/service"
	"addressable/internal/infra/metrics"
	"addressable/internal/usecase"
	"addressable/internal/validation"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// boundPadding widens the proximity prefilter so that rounding in the
// decimal(10,7) columns never drops a point on the edge.
const boundPadding = 1e-6

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	geocoder    service.Geocoder
	countries   service.CountryDirectory
	validator   *validation.Validator
	owners      *OwnerRegistry
	flags       entity.FlagSet
	metrics     *metrics.AddressMetrics
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Geocoder    service.Geocoder
	Countries   service.CountryDirectory
	Validator   *validation.Validator
	Owners      *OwnerRegistry
	Flags       entity.FlagSet
	Metrics     *metrics.AddressMetrics `optional:"true"`
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		geocoder:    params.Geocoder,
		countries:   params.Countries,
		validator:   params.Validator,
		owners:      params.Owners,
		flags:       params.Flags,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *addressService) checkFlag(flag entity.Flag) error {
	if !srv.flags.Has(flag) {
		return domainerrors.ErrInvalidFlag.WithDetails(flag.String())
	}

	return nil
}

// Addresses lists the owner's addresses, oldest first.
func (srv *addressService) Addresses(ctx context.Context, owner entity.OwnerRef, filter usecase.AddressFilter) ([]*entity.Address, error) {
	if err := srv.owners.Check(owner); err != nil {
		return nil, err
	}
	if filter.Flag != "" {
		if err := srv.checkFlag(filter.Flag); err != nil {
			return nil, err
		}
	}

	addresses, err := srv.addressRepo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{
		Flag:           filter.Flag,
		CountryCode:    strings.ToUpper(strings.TrimSpace(filter.CountryCode)),
		IncludeDeleted: filter.IncludeDeleted,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// Representative applies the selection policy to the owner's live addresses.
func (srv *addressService) Representative(ctx context.Context, owner entity.OwnerRef, flag entity.Flag) (*entity.Address, error) {
	if err := srv.checkFlag(flag); err != nil {
		return nil, err
	}

	addresses, err := srv.Addresses(ctx, owner, usecase.AddressFilter{})
	if err != nil {
		return nil, err
	}

	return entity.SelectRepresentative(addresses, flag), nil
}

func (srv *addressService) Address(ctx context.Context, owner entity.OwnerRef) (*entity.Address, error) {
	return srv.Representative(ctx, owner, entity.FlagPrimary)
}

func (srv *addressService) BillingAddress(ctx context.Context, owner entity.OwnerRef) (*entity.Address, error) {
	return srv.Representative(ctx, owner, entity.FlagBilling)
}

func (srv *addressService) ShippingAddress(ctx context.Context, owner entity.OwnerRef) (*entity.Address, error) {
	return srv.Representative(ctx, owner, entity.FlagShipping)
}

// HasAddresses reports whether the owner has at least one live address.
func (srv *addressService) HasAddresses(ctx context.Context, owner entity.OwnerRef) (bool, error) {
	if err := srv.owners.Check(owner); err != nil {
		return false, err
	}

	count, err := srv.addressRepo.CountAddressesByOwner(ctx, owner)
	if err != nil {
		return false, errors.Wrap(err, "failed to count addresses")
	}

	return count > 0, nil
}

// submittedAttributes rejects flags that are not enabled and canonicalizes the
// country code before validation sees them.
func (srv *addressService) submittedAttributes(input *usecase.AddressInput) (map[string]any, error) {
	if input == nil {
		input = &usecase.AddressInput{}
	}

	for flag := range input.Flags {
		if err := srv.checkFlag(flag); err != nil {
			return nil, err
		}
	}

	attrs := input.ToAttributes()
	if code, ok := attrs[entity.AttrCountryCode].(string); ok {
		attrs[entity.AttrCountryCode] = strings.ToUpper(strings.TrimSpace(code))
	}

	return attrs, nil
}

// AddAddress validates the input and returns the owner's identical address when one
// exists. Otherwise the address is geocoded and created.
func (srv *addressService) AddAddress(ctx context.Context, owner entity.OwnerRef, input *usecase.AddressInput) (*entity.Address, error) {
	if err := srv.owners.Check(owner); err != nil {
		return nil, err
	}

	attrs, err := srv.submittedAttributes(input)
	if err != nil {
		return nil, err
	}
	if err := srv.validator.Validate(ctx, attrs); err != nil {
		return nil, err
	}

	candidate := &entity.Address{Owner: owner}
	candidate.Apply(attrs, srv.flags)
	naturalKey := srv.naturalKey(candidate, attrs)

	existing, err := srv.addressRepo.FindMatchingAddress(ctx, owner, naturalKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to match address")
	}
	if existing != nil {
		srv.log(ctx).Debug("Address already exists", slog.String("owner", owner.String()), slog.Any("addressID", existing.ID))

		return existing, nil
	}

	srv.geocode(ctx, candidate)

	now := time.Now()
	candidate.ID = uuid.New()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	var saved *entity.Address
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		// re-check inside the transaction, a concurrent request may have created it meanwhile
		match, err := addressRepo.FindMatchingAddress(ctx, owner, naturalKey)
		if err != nil {
			return errors.Wrap(err, "failed to match address")
		}
		if match != nil {
			saved = match

			return nil
		}

		if err := addressRepo.CreateAddress(ctx, candidate); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		saved = candidate

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add address", slog.String("owner", owner.String()), slog.Any("error", err))

		return nil, err
	}

	if saved == candidate {
		srv.metrics.AddMutations("create", 1)
		srv.log(ctx).Debug("Address created", slog.String("owner", owner.String()), slog.Any("addressID", saved.ID))
	}

	return saved, nil
}

// naturalKey picks the submitted, matchable attributes in their normalized form.
func (srv *addressService) naturalKey(candidate *entity.Address, attrs map[string]any) map[string]any {
	normalized := candidate.Attributes(srv.flags)

	key := make(map[string]any, len(attrs))
	for name := range attrs {
		if !entity.IsMatchableAttribute(name, srv.flags) {
			continue
		}
		if value, ok := normalized[name]; ok {
			key[name] = value
		}
	}

	return key
}

// UpdateAddress validates the merged attributes, then saves the address.
func (srv *addressService) UpdateAddress(ctx context.Context, owner entity.OwnerRef, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := srv.owners.Check(owner); err != nil {
		return nil, err
	}

	attrs, err := srv.submittedAttributes(input)
	if err != nil {
		return nil, err
	}

	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	merged := address.Attributes(srv.flags)
	for key, value := range attrs {
		merged[key] = value
	}
	if err := srv.validator.Validate(ctx, merged); err != nil {
		return nil, err
	}

	address.Apply(attrs, srv.flags)
	srv.geocode(ctx, address)
	address.UpdatedAt = time.Now()

	if err := srv.addressRepo.UpdateAddress(ctx, address); err != nil {
		srv.log(ctx).Error("Failed to update address", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update address")
	}

	srv.metrics.AddMutations("update", 1)

	return address, nil
}

// geocode runs the geocoder and copies matched coordinates onto addr.
func (srv *addressService) geocode(ctx context.Context, addr *entity.Address) {
	start := time.Now()
	result := srv.geocoder.Geocode(ctx, addr)
	srv.metrics.ObserveGeocode(string(result.Outcome), time.Since(start))

	attrs := []any{slog.String("outcome", string(result.Outcome))}
	if result.Err != nil {
		attrs = append(attrs, slog.Any("error", result.Err))
	}
	srv.log(ctx).Debug("Geocoded address", attrs...)

	service.ApplyGeocode(addr, result)
}

// DeleteAddress soft-deletes one of the owner's addresses.
func (srv *addressService) DeleteAddress(ctx context.Context, owner entity.OwnerRef, addressID uuid.UUID) (int64, error) {
	if err := srv.owners.Check(owner); err != nil {
		return 0, err
	}

	rows, err := srv.addressRepo.SoftDeleteAddress(ctx, owner, addressID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete address")
	}
	srv.metrics.AddMutations("delete", rows)

	return rows, nil
}

// FlushAddresses soft-deletes every address of the owner.
func (srv *addressService) FlushAddresses(ctx context.Context, owner entity.OwnerRef) (int64, error) {
	if err := srv.owners.Check(owner); err != nil {
		return 0, err
	}

	rows, err := srv.addressRepo.SoftDeleteAddressesByOwner(ctx, owner)
	if err != nil {
		return 0, errors.Wrap(err, "failed to flush addresses")
	}
	srv.metrics.AddMutations("flush", rows)
	srv.log(ctx).Info("Flushed addresses", slog.String("owner", owner.String()), slog.Int64("rows", rows))

	return rows, nil
}

func (srv *addressService) RestoreAddress(ctx context.Context, owner entity.OwnerRef, addressID uuid.UUID) (int64, error) {
	if err := srv.owners.Check(owner); err != nil {
		return 0, err
	}

	rows, err := srv.addressRepo.RestoreAddress(ctx, owner, addressID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to restore address")
	}
	srv.metrics.AddMutations("restore", rows)

	return rows, nil
}

// PurgeOwner permanently removes the owner's addresses, soft-deleted ones included.
func (srv *addressService) PurgeOwner(ctx context.Context, owner entity.OwnerRef) (int64, error) {
	if err := srv.owners.Check(owner); err != nil {
		return 0, err
	}

	rows, err := srv.addressRepo.PurgeAddressesByOwner(ctx, owner)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge addresses")
	}
	srv.metrics.AddMutations("purge", rows)
	srv.log(ctx).Info("Purged owner addresses", slog.String("owner", owner.String()), slog.Int64("rows", rows))

	return rows, nil
}

// FlaggedAddress returns the first flagged address, or nil.
func (srv *addressService) FlaggedAddress(ctx context.Context, owner entity.OwnerRef, flag entity.Flag, direction entity.SortDirection) (*entity.Address, error) {
	if err := srv.owners.Check(owner); err != nil {
		return nil, err
	}
	if err := srv.checkFlag(flag); err != nil {
		return nil, err
	}

	direction, ok := entity.ParseSortDirection(string(direction))
	if !ok {
		return nil, domainerrors.ErrInvalidSortDirection
	}

	address, err := srv.addressRepo.FindFlaggedAddress(ctx, owner, flag, direction)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find flagged address")
	}

	return address, nil
}

// Format renders one of the owner's addresses for display.
func (srv *addressService) Format(ctx context.Context, owner entity.OwnerRef, addressID uuid.UUID) (*usecase.FormattedAddress, error) {
	if err := srv.owners.Check(owner); err != nil {
		return nil, err
	}

	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.Owner != owner {
		return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address belongs to another owner")
	}

	return &usecase.FormattedAddress{
		ID:          address.ID,
		FullName:    address.FullName(),
		CountryName: address.CountryName(srv.countries),
		Parts:       address.FormattedParts(srv.countries),
		Line:        address.FormattedLine(srv.countries, ""),
		Block:       address.FormattedBlock(srv.countries),
		QueryString: address.QueryString(srv.countries),
	}, nil
}

// FindOwnersByDistance prefilters with a bounding box in storage, then keeps the
// addresses whose haversine distance is within the radius.
func (srv *addressService) FindOwnersByDistance(ctx context.Context, query usecase.ProximityQuery) ([]entity.OwnerRef, error) {
	unit, ok := entity.ParseDistanceUnit(string(query.Unit))
	if !ok {
		return nil, domainerrors.ErrInvalidDistanceUnit.WithDetails(string(query.Unit))
	}
	if !validProximity(query) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	radius := unit.ToMeters(query.Distance)
	center := orb.Point{query.Longitude, query.Latitude}

	addresses, err := srv.addressRepo.FindAddressesWithinBound(ctx, searchBound(center, radius))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses within bound")
	}

	seen := make(map[entity.OwnerRef]struct{})
	owners := make([]entity.OwnerRef, 0)
	for _, address := range addresses {
		point, ok := address.Point()
		if !ok || geo.DistanceHaversine(center, point) > radius {
			continue
		}
		if _, dup := seen[address.Owner]; dup {
			continue
		}
		seen[address.Owner] = struct{}{}
		owners = append(owners, address.Owner)
	}

	srv.log(ctx).Debug("Proximity search",
		slog.Float64("radiusMeters", radius),
		slog.Int("candidates", len(addresses)),
		slog.Int("owners", len(owners)),
	)

	return owners, nil
}

func validProximity(query usecase.ProximityQuery) bool {
	for _, v := range []float64{query.Distance, query.Latitude, query.Longitude} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return query.Distance >= 0 &&
		query.Latitude >= -90 && query.Latitude <= 90 &&
		query.Longitude >= -180 && query.Longitude <= 180
}

// searchBound is the padded box around center. A box crossing the antimeridian
// or a pole falls back to the full longitude range.
//
// geo.NewBoundAroundPoint wraps longitudes, so a crossing box comes back with
// Min.Lon greater than Max.Lon rather than an edge beyond ±180.
func searchBound(center orb.Point, radius float64) orb.Bound {
	bound := geo.NewBoundAroundPoint(center, radius).Pad(boundPadding)

	minLat := math.Max(bound.Min.Lat(), -90)
	maxLat := math.Min(bound.Max.Lat(), 90)
	minLon, maxLon := bound.Min.Lon(), bound.Max.Lon()
	if minLon > maxLon || minLon < -180 || maxLon > 180 || minLat == -90 || maxLat == 90 {
		minLon, maxLon = -180, 180
	}

	return orb.Bound{Min: orb.Point{minLon, minLat}, Max: orb.Point{maxLon, maxLat}}
}

// ResolveOwners loads each owner through the registry, keeping the input order.
func (srv *addressService) ResolveOwners(ctx context.Context, refs []entity.OwnerRef) ([]usecase.ResolvedOwner, error) {
	resolved := make([]usecase.ResolvedOwner, 0, len(refs))
	for _, ref := range refs {
		owner, err := srv.owners.Resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, usecase.ResolvedOwner{Ref: ref, Owner: owner})
	}

	return resolved, nil
}
