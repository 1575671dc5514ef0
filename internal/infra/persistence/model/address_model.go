// Package model contains the GORM table structs.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	OwnerType    string            `gorm:"column:owner_type;type:varchar(150);not null;index:idx_addresses_owner"`
	OwnerID      uuid.UUID         `gorm:"column:owner_id;type:uuid;not null;index:idx_addresses_owner"`
	Label        string            `gorm:"column:label;type:varchar(150)"`
	GivenName    string            `gorm:"column:given_name;type:varchar(150)"`
	FamilyName   string            `gorm:"column:family_name;type:varchar(150)"`
	Organization string            `gorm:"column:organization;type:varchar(150)"`
	Line1        string            `gorm:"column:line_1;type:varchar(255)"`
	Line2        string            `gorm:"column:line_2;type:varchar(255)"`
	City         string            `gorm:"column:city;type:varchar(150)"`
	Province     string            `gorm:"column:province;type:varchar(150)"`
	PostalCode   string            `gorm:"column:postal_code;type:varchar(150)"`
	CountryCode  string            `gorm:"column:country_code;type:char(2)"`
	Latitude     *float64          `gorm:"column:latitude;type:decimal(10,7)"`
	Longitude    *float64          `gorm:"column:longitude;type:decimal(10,7)"`
	Extra        datatypes.JSONMap `gorm:"column:extra;type:jsonb"`
	IsPrimary    bool              `gorm:"column:is_primary;not null;default:false"`
	IsBilling    bool              `gorm:"column:is_billing;not null;default:false"`
	IsShipping   bool              `gorm:"column:is_shipping;not null;default:false"`
	CreatedAt    time.Time         `gorm:"column:created_at"`
	UpdatedAt    time.Time         `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"column:deleted_at;index"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
