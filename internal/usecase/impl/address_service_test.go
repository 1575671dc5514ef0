package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"addressable/internal/domain/entity"
	domainerrors "addressable/internal/domain/errors"
	"addressable/internal/domain/repository"
	"addressable/internal/domain/service"
	mockRepo "addressable/internal/mocks/repository"
	mockSvc "addressable/internal/mocks/service"
	"addressable/internal/usecase"
	"addressable/internal/validation"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubCountries map[string]string

func (c stubCountries) Name(code string) string {
	return c[code]
}

func (c stubCountries) IsValid(code string) bool {
	_, ok := c[code]

	return ok
}

var testCountries = stubCountries{"US": "United States", "DE": "Germany"}

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
	geocoder    *mockSvc.MockGeocoder
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	flags := entity.MustParseFlags("primary", "billing")

	validator, err := validation.NewValidator(validation.NewRuleSet(nil, flags), testCountries)
	require.NoError(t, err)

	svc := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Geocoder:    geocoder,
		Countries:   testCountries,
		Validator:   validator,
		Owners:      NewOwnerRegistry([]entity.OwnerType{entity.OwnerTypeUser, entity.OwnerTypeMerchant}),
		Flags:       flags,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return addressServiceFixtures{
		service:     svc,
		txManager:   txManager,
		addressRepo: addressRepo,
		geocoder:    geocoder,
	}
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func validInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Line1:       strPtr("1 Main St"),
		City:        strPtr("Springfield"),
		Province:    strPtr("IL"),
		PostalCode:  strPtr("62704"),
		CountryCode: strPtr("us"),
	}
}

func userRef() entity.OwnerRef {
	return entity.NewOwnerRef(entity.OwnerTypeUser, uuid.New())
}

// expectTransaction runs the transactional callback against a fresh factory
// bound to the given repository.
func expectTransaction(t *testing.T, f addressServiceFixtures, ctx context.Context, setup func(txRepo *mockRepo.MockAddressRepository)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockAddressRepository(t)
			factory.EXPECT().AddressRepo().Return(txRepo)
			setup(txRepo)

			return fn(factory)
		})
}

func TestAddressService_AddAddress_CreatesAndGeocodes(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()

	fx.addressRepo.EXPECT().
		FindMatchingAddress(ctx, owner, mock.Anything).
		Return(nil, nil)

	fx.geocoder.EXPECT().
		Geocode(ctx, mock.AnythingOfType("*entity.Address")).
		Return(service.GeocodeResult{Outcome: service.GeocodeMatched, Latitude: 39.78, Longitude: -89.65})

	expectTransaction(t, fx, ctx, func(txRepo *mockRepo.MockAddressRepository) {
		txRepo.EXPECT().
			FindMatchingAddress(ctx, owner, mock.Anything).
			Return(nil, nil)
		txRepo.EXPECT().
			CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
			Return(nil)
	})

	address, err := fx.service.AddAddress(ctx, owner, validInput())
	require.NoError(t, err)
	require.NotNil(t, address)

	assert.NotEqual(t, uuid.Nil, address.ID)
	assert.Equal(t, owner, address.Owner)
	assert.Equal(t, "US", address.CountryCode)
	require.True(t, address.HasCoordinates())
	assert.InDelta(t, 39.78, *address.Latitude, 1e-9)
	assert.InDelta(t, -89.65, *address.Longitude, 1e-9)
	assert.False(t, address.CreatedAt.IsZero())
}

func TestAddressService_AddAddress_ReturnsExistingMatch(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	existing := &entity.Address{ID: uuid.New(), Owner: owner, Line1: "1 Main St"}

	fx.addressRepo.EXPECT().
		FindMatchingAddress(ctx, owner, mock.Anything).
		Return(existing, nil)

	address, err := fx.service.AddAddress(ctx, owner, validInput())
	require.NoError(t, err)
	assert.Same(t, existing, address)
}

func TestAddressService_AddAddress_MatchesOnSubmittedAttributes(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	input := validInput()
	input.Extra = map[string]any{"door": "blue"}
	input.Flags = map[entity.Flag]bool{entity.FlagPrimary: true}

	fx.addressRepo.EXPECT().
		FindMatchingAddress(ctx, owner, mock.MatchedBy(func(attrs map[string]any) bool {
			_, hasExtra := attrs[entity.AttrExtra]
			_, hasLine2 := attrs[entity.AttrLine2]

			return attrs[entity.AttrCountryCode] == "US" &&
				attrs["is_primary"] == true &&
				len(attrs) == 6 &&
				!hasExtra && !hasLine2
		})).
		Return(&entity.Address{ID: uuid.New(), Owner: owner}, nil)

	_, err := fx.service.AddAddress(ctx, owner, input)
	require.NoError(t, err)
}

func TestAddressService_AddAddress_CanonicalizesCountryCode(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	input := validInput()
	input.CountryCode = strPtr(" de ")

	fx.addressRepo.EXPECT().
		FindMatchingAddress(ctx, owner, mock.MatchedBy(func(attrs map[string]any) bool {
			return attrs[entity.AttrCountryCode] == "DE"
		})).
		Return(nil, nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, mock.Anything).
		Return(service.GeocodeResult{Outcome: service.GeocodeSkipped})

	expectTransaction(t, fx, ctx, func(txRepo *mockRepo.MockAddressRepository) {
		txRepo.EXPECT().FindMatchingAddress(ctx, owner, mock.Anything).Return(nil, nil)
		txRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
	})

	address, err := fx.service.AddAddress(ctx, owner, input)
	require.NoError(t, err)
	assert.Equal(t, "DE", address.CountryCode)
}

func TestAddressService_AddAddress_MatchesOnStoredCoordinatePrecision(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	existing := &entity.Address{ID: uuid.New(), Owner: owner}
	input := validInput()
	input.Latitude = floatPtr(39.123456789)
	input.Longitude = floatPtr(-89.987654321)

	fx.addressRepo.EXPECT().
		FindMatchingAddress(ctx, owner, mock.MatchedBy(func(attrs map[string]any) bool {
			lat, _ := attrs[entity.AttrLatitude].(float64)
			lng, _ := attrs[entity.AttrLongitude].(float64)

			return lat == 39.1234568 && lng == -89.9876543
		})).
		Return(existing, nil)

	address, err := fx.service.AddAddress(ctx, owner, input)
	require.NoError(t, err)
	assert.Same(t, existing, address)
}

func TestAddressService_AddAddress_ConcurrentCreateWins(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	winner := &entity.Address{ID: uuid.New(), Owner: owner}

	fx.addressRepo.EXPECT().
		FindMatchingAddress(ctx, owner, mock.Anything).
		Return(nil, nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, mock.Anything).
		Return(service.GeocodeResult{Outcome: service.GeocodeSkipped})

	expectTransaction(t, fx, ctx, func(txRepo *mockRepo.MockAddressRepository) {
		txRepo.EXPECT().
			FindMatchingAddress(ctx, owner, mock.Anything).
			Return(winner, nil)
	})

	address, err := fx.service.AddAddress(ctx, owner, validInput())
	require.NoError(t, err)
	assert.Same(t, winner, address)
}

func TestAddressService_AddAddress_KeepsCoordinatesWithoutGeocodeMatch(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	input := validInput()
	input.Latitude = floatPtr(10.5)
	input.Longitude = floatPtr(20.25)

	fx.addressRepo.EXPECT().
		FindMatchingAddress(ctx, owner, mock.Anything).
		Return(nil, nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, mock.Anything).
		Return(service.GeocodeResult{Outcome: service.GeocodeNoMatch})

	expectTransaction(t, fx, ctx, func(txRepo *mockRepo.MockAddressRepository) {
		txRepo.EXPECT().FindMatchingAddress(ctx, owner, mock.Anything).Return(nil, nil)
		txRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
	})

	address, err := fx.service.AddAddress(ctx, owner, input)
	require.NoError(t, err)
	require.True(t, address.HasCoordinates())
	assert.InDelta(t, 10.5, *address.Latitude, 1e-9)
	assert.InDelta(t, 20.25, *address.Longitude, 1e-9)
}

func TestAddressService_AddAddress_TransactionError(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	persistErr := domainerrors.ErrAddressPersistFailed.WithDetails("check constraint")

	fx.addressRepo.EXPECT().FindMatchingAddress(ctx, owner, mock.Anything).Return(nil, nil)
	fx.geocoder.EXPECT().Geocode(ctx, mock.Anything).Return(service.GeocodeResult{Outcome: service.GeocodeSkipped})

	expectTransaction(t, fx, ctx, func(txRepo *mockRepo.MockAddressRepository) {
		txRepo.EXPECT().FindMatchingAddress(ctx, owner, mock.Anything).Return(nil, nil)
		txRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(persistErr)
	})

	address, err := fx.service.AddAddress(ctx, owner, validInput())
	require.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressPersistFailed))
}

func TestAddressService_AddAddress_ValidationFailure(t *testing.T) {
	fx := createTestAddressService(t)

	input := validInput()
	input.Line1 = nil
	input.CountryCode = strPtr("ZZ")

	address, err := fx.service.AddAddress(context.Background(), userRef(), input)
	require.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{
		"The selected country_code is invalid.",
		"The line_1 field is required.",
	}, validationErr.Messages)
}

func TestAddressService_AddAddress_RejectsInactiveFlag(t *testing.T) {
	fx := createTestAddressService(t)

	input := validInput()
	input.Flags = map[entity.Flag]bool{entity.FlagShipping: true}

	_, err := fx.service.AddAddress(context.Background(), userRef(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFlag))
}

func TestAddressService_OwnerChecks(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	_, err := fx.service.AddAddress(ctx, entity.OwnerRef{}, validInput())
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOwner))

	_, err = fx.service.HasAddresses(ctx, entity.NewOwnerRef("vendor", uuid.New()))
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownOwnerType))

	_, err = fx.service.FlushAddresses(ctx, entity.NewOwnerRef(entity.OwnerTypeUser, uuid.Nil))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOwner))
}

func TestAddressService_UpdateAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, id).
		Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.UpdateAddress(ctx, userRef(), id, validInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_UpdateAddress_MergesAndSaves(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	existing := &entity.Address{
		ID:          uuid.New(),
		Owner:       owner,
		Line1:       "1 Main St",
		City:        "Springfield",
		Province:    "IL",
		PostalCode:  "62704",
		CountryCode: "US",
		IsBilling:   true,
	}

	fx.addressRepo.EXPECT().FindAddressByID(ctx, existing.ID).Return(existing, nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, existing).
		Return(service.GeocodeResult{Outcome: service.GeocodeMatched, Latitude: 1, Longitude: 2})
	fx.addressRepo.EXPECT().UpdateAddress(ctx, existing).Return(nil)

	input := &usecase.AddressInput{
		City:  strPtr("Shelbyville"),
		Flags: map[entity.Flag]bool{entity.FlagPrimary: true},
	}

	address, err := fx.service.UpdateAddress(ctx, owner, existing.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Shelbyville", address.City)
	assert.Equal(t, "1 Main St", address.Line1)
	assert.True(t, address.IsPrimary)
	assert.True(t, address.IsBilling)
	assert.True(t, address.HasCoordinates())
	assert.False(t, address.UpdatedAt.IsZero())
}

func TestAddressService_UpdateAddress_ValidatesMergedAttributes(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	existing := &entity.Address{ID: uuid.New(), Line1: "1 Main St", City: "Springfield", Province: "IL", PostalCode: "62704", CountryCode: "US"}

	fx.addressRepo.EXPECT().FindAddressByID(ctx, existing.ID).Return(existing, nil)

	_, err := fx.service.UpdateAddress(ctx, userRef(), existing.ID, &usecase.AddressInput{City: strPtr("")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "Springfield", existing.City, "a rejected update leaves the address untouched")
}

func TestAddressService_Representative(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	addresses := []*entity.Address{
		{ID: uuid.New(), Owner: owner, CreatedAt: base},
		{ID: uuid.New(), Owner: owner, CreatedAt: base.Add(time.Hour), IsBilling: true},
		{ID: uuid.New(), Owner: owner, CreatedAt: base.Add(2 * time.Hour)},
	}

	fx.addressRepo.EXPECT().
		FindAddressesByOwner(ctx, owner, repository.AddressQuery{}).
		Return(addresses, nil).
		Times(2)

	billing, err := fx.service.BillingAddress(ctx, owner)
	require.NoError(t, err)
	assert.Same(t, addresses[1], billing)

	primary, err := fx.service.Address(ctx, owner)
	require.NoError(t, err)
	assert.Same(t, addresses[2], primary)

	_, err = fx.service.ShippingAddress(ctx, owner)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFlag))
}

func TestAddressService_Addresses_NormalizesFilter(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()

	fx.addressRepo.EXPECT().
		FindAddressesByOwner(ctx, owner, repository.AddressQuery{Flag: entity.FlagBilling, CountryCode: "DE", IncludeDeleted: true}).
		Return([]*entity.Address{}, nil)

	addresses, err := fx.service.Addresses(ctx, owner, usecase.AddressFilter{Flag: entity.FlagBilling, CountryCode: " de ", IncludeDeleted: true})
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestAddressService_HasAddresses(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()

	fx.addressRepo.EXPECT().CountAddressesByOwner(ctx, owner).Return(int64(0), nil).Once()
	has, err := fx.service.HasAddresses(ctx, owner)
	require.NoError(t, err)
	assert.False(t, has)

	fx.addressRepo.EXPECT().CountAddressesByOwner(ctx, owner).Return(int64(2), nil).Once()
	has, err = fx.service.HasAddresses(ctx, owner)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestAddressService_Mutations(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	id := uuid.New()

	fx.addressRepo.EXPECT().SoftDeleteAddress(ctx, owner, id).Return(int64(1), nil)
	fx.addressRepo.EXPECT().SoftDeleteAddressesByOwner(ctx, owner).Return(int64(3), nil)
	fx.addressRepo.EXPECT().RestoreAddress(ctx, owner, id).Return(int64(1), nil)
	fx.addressRepo.EXPECT().PurgeAddressesByOwner(ctx, owner).Return(int64(4), nil)

	rows, err := fx.service.DeleteAddress(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = fx.service.FlushAddresses(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rows)

	rows, err = fx.service.RestoreAddress(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = fx.service.PurgeOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rows)
}

func TestAddressService_DeleteAddress_ForeignIDIsNoop(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	id := uuid.New()

	fx.addressRepo.EXPECT().SoftDeleteAddress(ctx, owner, id).Return(int64(0), nil)

	rows, err := fx.service.DeleteAddress(ctx, owner, id)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestAddressService_FlaggedAddress(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	flagged := &entity.Address{ID: uuid.New(), Owner: owner, IsPrimary: true}

	fx.addressRepo.EXPECT().
		FindFlaggedAddress(ctx, owner, entity.FlagPrimary, entity.SortDesc).
		Return(flagged, nil)

	address, err := fx.service.FlaggedAddress(ctx, owner, entity.FlagPrimary, "")
	require.NoError(t, err)
	assert.Same(t, flagged, address)

	_, err = fx.service.FlaggedAddress(ctx, owner, entity.FlagPrimary, "sideways")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSortDirection))

	_, err = fx.service.FlaggedAddress(ctx, owner, entity.FlagShipping, entity.SortAsc)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFlag))
}

func TestAddressService_Format(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()
	address := &entity.Address{
		ID:          uuid.New(),
		Owner:       owner,
		GivenName:   "Jane",
		FamilyName:  "Doe",
		Line1:       "1 Main St",
		City:        "Springfield",
		Province:    "IL",
		PostalCode:  "62704",
		CountryCode: "US",
	}

	fx.addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil).Times(2)

	formatted, err := fx.service.Format(ctx, owner, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", formatted.FullName)
	assert.Equal(t, "United States", formatted.CountryName)
	assert.Equal(t, "1 Main St, Springfield IL 62704, United States", formatted.Line)
	assert.Equal(t, "1+Main+St%2CSpringfield%2CIL%2C62704%2CUnited+States", formatted.QueryString)

	_, err = fx.service.Format(ctx, userRef(), address.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func located(owner entity.OwnerRef, lat, lng float64) *entity.Address {
	a := &entity.Address{ID: uuid.New(), Owner: owner}
	a.SetCoordinates(lat, lng)

	return a
}

func TestAddressService_FindOwnersByDistance(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	near := userRef()
	far := entity.NewOwnerRef(entity.OwnerTypeMerchant, uuid.New())

	candidates := []*entity.Address{
		located(near, 52.5200, 13.4050),
		located(far, 52.6000, 13.4050),
		located(near, 52.5210, 13.4050),
	}

	fx.addressRepo.EXPECT().
		FindAddressesWithinBound(ctx, mock.MatchedBy(func(b orb.Bound) bool {
			return b.Contains(orb.Point{13.4050, 52.5200})
		})).
		Return(candidates, nil)

	owners, err := fx.service.FindOwnersByDistance(ctx, usecase.ProximityQuery{
		Distance:  1,
		Unit:      entity.UnitKilometers,
		Latitude:  52.5200,
		Longitude: 13.4050,
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.OwnerRef{near}, owners)
}

func TestAddressService_FindOwnersByDistance_ZeroRadius(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := userRef()

	fx.addressRepo.EXPECT().
		FindAddressesWithinBound(ctx, mock.Anything).
		Return([]*entity.Address{located(owner, 10, 20), located(userRef(), 10.001, 20)}, nil)

	owners, err := fx.service.FindOwnersByDistance(ctx, usecase.ProximityQuery{Unit: entity.UnitMeters, Latitude: 10, Longitude: 20})
	require.NoError(t, err)
	assert.Equal(t, []entity.OwnerRef{owner}, owners)
}

func TestAddressService_FindOwnersByDistance_InvalidQuery(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	_, err := fx.service.FindOwnersByDistance(ctx, usecase.ProximityQuery{Distance: 1, Unit: "furlongs"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDistanceUnit))

	_, err = fx.service.FindOwnersByDistance(ctx, usecase.ProximityQuery{Distance: 1, Unit: entity.UnitMiles, Latitude: 91})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))

	_, err = fx.service.FindOwnersByDistance(ctx, usecase.ProximityQuery{Distance: -1, Unit: entity.UnitMiles})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestAddressService_FindOwnersByDistance_AcrossAntimeridian(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	east := userRef()
	west := entity.NewOwnerRef(entity.OwnerTypeMerchant, uuid.New())
	stored := []*entity.Address{
		located(east, 0, 179.995),
		located(west, 0, -179.995),
	}

	// the repository filters with BETWEEN on both axes
	fx.addressRepo.EXPECT().
		FindAddressesWithinBound(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, b orb.Bound) ([]*entity.Address, error) {
			var inside []*entity.Address
			for _, addr := range stored {
				lat, lng := *addr.Latitude, *addr.Longitude
				if lat >= b.Min.Lat() && lat <= b.Max.Lat() && lng >= b.Min.Lon() && lng <= b.Max.Lon() {
					inside = append(inside, addr)
				}
			}

			return inside, nil
		})

	owners, err := fx.service.FindOwnersByDistance(ctx, usecase.ProximityQuery{
		Distance:  10,
		Unit:      entity.UnitKilometers,
		Latitude:  0,
		Longitude: 179.99,
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.OwnerRef{east, west}, owners)
}

func TestSearchBound_Antimeridian(t *testing.T) {
	bound := searchBound(orb.Point{179.99, 0}, 10_000)
	assert.InDelta(t, -180.0, bound.Min.Lon(), 1e-9)
	assert.InDelta(t, 180.0, bound.Max.Lon(), 1e-9)

	bound = searchBound(orb.Point{-179.99, 0}, 10_000)
	assert.LessOrEqual(t, bound.Min.Lon(), bound.Max.Lon())
	assert.True(t, bound.Contains(orb.Point{179.995, 0}))

	bound = searchBound(orb.Point{0, 0}, 10_000)
	assert.Less(t, bound.Max.Lon(), 1.0)
	assert.Greater(t, bound.Min.Lon(), -1.0)
}

func TestAddressService_ResolveOwners(t *testing.T) {
	ctx := context.Background()
	user := userRef()

	owners := NewOwnerRegistry(nil, usecase.OwnerBinding{
		Type: entity.OwnerTypeUser,
		Resolver: usecase.OwnerResolverFunc(func(_ context.Context, id uuid.UUID) (any, error) {
			return "user " + id.String(), nil
		}),
	})
	srv := &addressService{owners: owners, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	resolved, err := srv.ResolveOwners(ctx, []entity.OwnerRef{user})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, user, resolved[0].Ref)
	assert.Equal(t, "user "+user.ID.String(), resolved[0].Owner)

	_, err = srv.ResolveOwners(ctx, []entity.OwnerRef{entity.NewOwnerRef(entity.OwnerTypeMerchant, uuid.New())})
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownOwnerType))
}
