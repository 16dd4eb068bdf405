package repositories

import "context"

// Seeder bootstraps demo data inside a single transaction: either every
// seeded row commits or none do.
type Seeder interface {
	Bootstrap(ctx context.Context, adminUsername, adminPasswordHash string) error
}

// Container groups all repository implementations for injection.
type Container struct {
	User     UserRepository
	Event    EventRepository
	Budget   BudgetRepository
	Vendor   VendorRepository
	Task     TaskRepository
	Template TemplateRepository
	Seeder   Seeder
}
