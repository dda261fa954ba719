package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides common identity and timestamp fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TenantEntity extends BaseEntity with the owning company.
// Every tenant-scoped row carries a company ID; repositories must never
// read or write a TenantEntity without filtering on it.
type TenantEntity struct {
	BaseEntity
	CompanyID uuid.UUID
}
