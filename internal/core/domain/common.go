package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy is also the tenant-scope column for owner-scoped entities:
// it always carries the effective owner id, never a staff member's own id.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference (effective owner)
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}
