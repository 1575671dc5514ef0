// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// OwnerType represents the type of entity that can own an address.
type OwnerType string

const (
	// OwnerTypeUser indicates the address belongs to a user.
	OwnerTypeUser OwnerType = "user"
	// OwnerTypeMerchant indicates the address belongs to a merchant.
	OwnerTypeMerchant OwnerType = "merchant"
)

// String returns the string representation of the OwnerType.
func (o OwnerType) String() string {
	return string(o)
}

// ParseOwnerType normalizes a raw owner type tag.
func ParseOwnerType(raw string) OwnerType {
	return OwnerType(strings.ToLower(strings.TrimSpace(raw)))
}

// OwnerRef is the discriminated reference from an address to the entity owning it.
type OwnerRef struct {
	Type OwnerType `json:"type"`
	ID   uuid.UUID `json:"id"`
}

// NewOwnerRef builds an owner reference.
func NewOwnerRef(ownerType OwnerType, id uuid.UUID) OwnerRef {
	return OwnerRef{Type: ownerType, ID: id}
}

// IsZero reports whether either half of the reference is missing.
func (o OwnerRef) IsZero() bool {
	return o.Type == "" || o.ID == uuid.Nil
}

func (o OwnerRef) String() string {
	return o.Type.String() + ":" + o.ID.String()
}
