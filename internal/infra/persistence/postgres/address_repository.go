// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"addressable/internal/domain/entity"
	domainerrors "addressable/internal/domain/errors"
	"addressable/internal/domain/repository"
	"addressable/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// matchableColumns guards FindMatchingAddress against arbitrary column names.
var matchableColumns = map[string]struct{}{
	"label": {}, "given_name": {}, "family_name": {}, "organization": {},
	"line_1": {}, "line_2": {}, "city": {}, "province": {}, "postal_code": {}, "country_code": {},
	"latitude": {}, "longitude": {},
	"is_primary": {}, "is_billing": {}, "is_shipping": {},
}

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func ownedBy(owner entity.OwnerRef) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_type = ? AND owner_id = ?", owner.Type.String(), owner.ID)
	}
}

func oldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return persistError(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// UpdateAddress writes every mutable column, zero values included.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	err := repo.db.WithContext(ctx).
		Model(addressM).
		Select("*").
		Omit("id", "owner_type", "owner_id", "created_at", "deleted_at").
		Updates(addressM).Error
	if err != nil {
		return persistError(err, "failed to update address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves a live address by its id.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByOwner lists an owner's addresses, oldest first.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, owner entity.OwnerRef, query repository.AddressQuery) ([]*entity.Address, error) {
	db := repo.db.WithContext(ctx)
	if query.IncludeDeleted {
		db = db.Unscoped()
	}

	db = db.Scopes(ownedBy(owner), oldestFirst)
	if query.Flag != "" {
		db = db.Where(clause.Eq{Column: clause.Column{Name: query.Flag.Column()}, Value: true})
	}
	if query.CountryCode != "" {
		db = db.Where("country_code = ?", query.CountryCode)
	}

	var addressModels []*model.AddressModel
	if err := db.Find(&addressModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find addresses by owner")
	}

	return toAddressDomains(addressModels), nil
}

// FindMatchingAddress returns the oldest live address whose columns equal attrs.
func (repo *addressRepository) FindMatchingAddress(ctx context.Context, owner entity.OwnerRef, attrs map[string]any) (*entity.Address, error) {
	conditions := make(map[string]any, len(attrs))
	for column, value := range attrs {
		if _, ok := matchableColumns[column]; !ok {
			return nil, errors.Errorf("column %q cannot be matched", column)
		}
		conditions[column] = value
	}

	db := repo.db.WithContext(ctx).Scopes(ownedBy(owner), oldestFirst)
	if len(conditions) > 0 {
		db = db.Where(conditions)
	}

	// Take keeps oldestFirst as the only ordering, First would sort by id ahead of it.
	var addressM model.AddressModel
	if err := db.Take(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to match address")
	}

	return toAddressDomain(&addressM), nil
}

// FindFlaggedAddress returns the first flagged address in direction order.
func (repo *addressRepository) FindFlaggedAddress(ctx context.Context, owner entity.OwnerRef, flag entity.Flag, direction entity.SortDirection) (*entity.Address, error) {
	column := clause.Column{Name: flag.Column()}

	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Where(clause.Eq{Column: column, Value: true}).
		Order(clause.OrderByColumn{Column: column, Desc: direction.Desc()}).
		Scopes(oldestFirst).
		Take(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find flagged address")
	}

	return toAddressDomain(&addressM), nil
}

// CountAddressesByOwner counts an owner's live addresses.
func (repo *addressRepository) CountAddressesByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Scopes(ownedBy(owner)).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count addresses by owner")
	}

	return count, nil
}

// SoftDeleteAddress marks one of the owner's addresses deleted.
func (repo *addressRepository) SoftDeleteAddress(ctx context.Context, owner entity.OwnerRef, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}

	return result.RowsAffected, nil
}

// SoftDeleteAddressesByOwner marks every live address of the owner deleted.
func (repo *addressRepository) SoftDeleteAddressesByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error) {
	result := repo.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to flush addresses")
	}

	return result.RowsAffected, nil
}

// RestoreAddress clears the deletion marker.
func (repo *addressRepository) RestoreAddress(ctx context.Context, owner entity.OwnerRef, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Unscoped().
		Model(&model.AddressModel{}).
		Scopes(ownedBy(owner)).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to restore address")
	}

	return result.RowsAffected, nil
}

// PurgeAddressesByOwner permanently removes every row of the owner.
func (repo *addressRepository) PurgeAddressesByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error) {
	result := repo.db.WithContext(ctx).
		Unscoped().
		Scopes(ownedBy(owner)).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge addresses")
	}

	return result.RowsAffected, nil
}

// FindAddressesWithinBound lists live addresses of any owner inside bound.
func (repo *addressRepository) FindAddressesWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Scopes(oldestFirst).
		Find(&addressModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find addresses within bound")
	}

	return toAddressDomains(addressModels), nil
}

func persistError(err error, details string) error {
	switch {
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrAddressPersistFailed.WithDetails("missing required address information")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrAddressPersistFailed.WithDetails("address violates a table constraint")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	address := &entity.Address{
		ID:           data.ID,
		Owner:        entity.NewOwnerRef(entity.OwnerType(data.OwnerType), data.OwnerID),
		Label:        data.Label,
		GivenName:    data.GivenName,
		FamilyName:   data.FamilyName,
		Organization: data.Organization,
		Line1:        data.Line1,
		Line2:        data.Line2,
		City:         data.City,
		Province:     data.Province,
		PostalCode:   data.PostalCode,
		CountryCode:  data.CountryCode,
		Extra:        map[string]any(data.Extra),
		IsPrimary:    data.IsPrimary,
		IsBilling:    data.IsBilling,
		IsShipping:   data.IsShipping,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		address.SetCoordinates(*data.Latitude, *data.Longitude)
	}
	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		address.DeletedAt = &deletedAt
	}

	return address
}

func toAddressDomains(models []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(models))
	for _, addressM := range models {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	addressM := &model.AddressModel{
		ID:           data.ID,
		OwnerType:    data.Owner.Type.String(),
		OwnerID:      data.Owner.ID,
		Label:        data.Label,
		GivenName:    data.GivenName,
		FamilyName:   data.FamilyName,
		Organization: data.Organization,
		Line1:        data.Line1,
		Line2:        data.Line2,
		City:         data.City,
		Province:     data.Province,
		PostalCode:   data.PostalCode,
		CountryCode:  data.CountryCode,
		IsPrimary:    data.IsPrimary,
		IsBilling:    data.IsBilling,
		IsShipping:   data.IsShipping,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.HasCoordinates() {
		lat, lng := *data.Latitude, *data.Longitude
		addressM.Latitude = &lat
		addressM.Longitude = &lng
	}
	if data.Extra != nil {
		addressM.Extra = datatypes.JSONMap(data.Extra)
	}
	if data.DeletedAt != nil {
		addressM.DeletedAt = gorm.DeletedAt{Time: *data.DeletedAt, Valid: true}
	}

	return addressM
}
