package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
)

// NewRepositoryContainer wires every pgx-backed repository against a shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) portsrepo.Container {
	return portsrepo.Container{
		User:     NewUserRepository(pool),
		Event:    NewEventRepository(pool),
		Budget:   NewBudgetRepository(pool),
		Vendor:   NewVendorRepository(pool),
		Task:     NewTaskRepository(pool),
		Template: NewTemplateRepository(pool),
		Seeder:   NewSeeder(pool),
	}
}
