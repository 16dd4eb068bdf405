package services

import (
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/platform/viewcache"
)

// NewServiceContainer wires every service facade against the repository
// container and the shared per-tenant view cache.
func NewServiceContainer(repos portsrepo.Container, cache *viewcache.Cache) *ports.ServiceContainer {
	return &ports.ServiceContainer{
		Auth:      NewAuthService(repos.User),
		User:      NewUserService(repos.User, cache),
		Event:     NewEventService(repos.Event, cache),
		Budget:    NewBudgetService(repos.Budget, repos.Event, cache),
		Vendor:    NewVendorService(repos.Vendor, cache),
		Task:      NewTaskService(repos.Task, repos.User, cache),
		Template:  NewTemplateService(repos.Template, repos.Event),
		Dashboard: NewDashboardService(repos, cache),
		Export:    NewExportService(repos.Event, repos.Budget),
	}
}
