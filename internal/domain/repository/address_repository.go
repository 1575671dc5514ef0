// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressable/internal/domain/entity"
	"addressable/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrAddressNotFound is returned when an address lookup by id finds nothing.
var ErrAddressNotFound = errors.New("address not found")

// AddressQuery narrows an owner's address list.
type AddressQuery struct {
	// Flag, when set, keeps only addresses with that role flag.
	Flag entity.Flag
	// CountryCode, when set, keeps only addresses in that country.
	CountryCode string
	// IncludeDeleted also returns soft-deleted rows.
	IncludeDeleted bool
}

// AddressRepository defines the interface for address-related database operations.
// Every owner-scoped method filters by owner type and owner id and skips soft-deleted rows.
type AddressRepository interface {
	// CreateAddress persists a new address.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// UpdateAddress saves every column of an existing address.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves a live address by id, regardless of owner.
	// Returns ErrAddressNotFound when absent.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByOwner lists an owner's addresses ordered by created_at, then id.
	FindAddressesByOwner(ctx context.Context, owner entity.OwnerRef, query AddressQuery) ([]*entity.Address, error)

	// FindMatchingAddress returns the oldest address of the owner whose columns equal attrs,
	// or nil when none does. Keys of attrs are column names.
	FindMatchingAddress(ctx context.Context, owner entity.OwnerRef, attrs map[string]any) (*entity.Address, error)

	// FindFlaggedAddress returns the first address with the flag set, ordered by the
	// flag column in direction, then created_at and id. Nil when none.
	FindFlaggedAddress(ctx context.Context, owner entity.OwnerRef, flag entity.Flag, direction entity.SortDirection) (*entity.Address, error)

	// CountAddressesByOwner counts an owner's live addresses.
	CountAddressesByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error)

	// SoftDeleteAddress marks one of the owner's addresses deleted.
	// A foreign or unknown id affects zero rows without error.
	SoftDeleteAddress(ctx context.Context, owner entity.OwnerRef, id uuid.UUID) (int64, error)

	// SoftDeleteAddressesByOwner marks every live address of the owner deleted.
	SoftDeleteAddressesByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error)

	// RestoreAddress clears the deletion marker of one of the owner's addresses.
	RestoreAddress(ctx context.Context, owner entity.OwnerRef, id uuid.UUID) (int64, error)

	// PurgeAddressesByOwner permanently removes every row of the owner, soft-deleted ones included.
	PurgeAddressesByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error)

	// FindAddressesWithinBound lists live addresses of any owner whose coordinates fall
	// inside bound, ordered by created_at, then id.
	FindAddressesWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Address, error)
}
