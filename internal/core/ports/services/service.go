package services

// ServiceContainer groups all service facades for route registration.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	User      UserSvcFacade
	Event     EventSvcFacade
	Budget    BudgetSvcFacade
	Vendor    VendorSvcFacade
	Task      TaskSvcFacade
	Template  TemplateSvcFacade
	Dashboard DashboardSvcFacade
	Export    ExportSvcFacade
}
