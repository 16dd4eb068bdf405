package services_test

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// Hand-written function-field mocks for the repository ports. Tests set
// only the functions they need; calling an unset function panics, which
// flags an unexpected repository interaction.

type MockUserRepository struct {
	SaveUserFn           func(ctx context.Context, user domain.User) error
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	FindTeamFn           func(ctx context.Context, ownerID string) ([]domain.User, error)
	FindAllUsersFn       func(ctx context.Context) ([]domain.User, error)
	UpdateProfileFn      func(ctx context.Context, user domain.User) error
	UpdateCredentialsFn  func(ctx context.Context, userID, passwordHash string, isFirstLogin bool) error
	SetBannedFn          func(ctx context.Context, userID string, banned bool) error
	DeleteUserFn         func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.SaveUserFn(ctx, user)
}
func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return m.FindUserByIDFn(ctx, userID)
}
func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.FindUserByUsernameFn(ctx, username)
}
func (m *MockUserRepository) FindTeam(ctx context.Context, ownerID string) ([]domain.User, error) {
	return m.FindTeamFn(ctx, ownerID)
}
func (m *MockUserRepository) FindAllUsers(ctx context.Context) ([]domain.User, error) {
	return m.FindAllUsersFn(ctx)
}
func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	return m.UpdateProfileFn(ctx, user)
}
func (m *MockUserRepository) UpdateCredentials(ctx context.Context, userID, passwordHash string, isFirstLogin bool) error {
	return m.UpdateCredentialsFn(ctx, userID, passwordHash, isFirstLogin)
}
func (m *MockUserRepository) SetBanned(ctx context.Context, userID string, banned bool) error {
	return m.SetBannedFn(ctx, userID, banned)
}
func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.DeleteUserFn(ctx, userID)
}

type MockEventRepository struct {
	SaveEventFn         func(ctx context.Context, event domain.Event) error
	FindEventByIDFn     func(ctx context.Context, eventID, ownerID string) (*domain.Event, error)
	FindEventsFn        func(ctx context.Context, ownerID string) ([]domain.Event, error)
	UpdateEventFn       func(ctx context.Context, event domain.Event, ownerID string) error
	DeleteEventFn       func(ctx context.Context, eventID, ownerID string) error
	AddEventVendorFn    func(ctx context.Context, ev domain.EventVendor, ownerID string) error
	FindEventVendorsFn  func(ctx context.Context, eventID, ownerID string) ([]domain.EventVendor, error)
	UpdateEventVendorFn func(ctx context.Context, ev domain.EventVendor, ownerID string) error
	DeleteEventVendorFn func(ctx context.Context, eventVendorID, ownerID string) error
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	return m.SaveEventFn(ctx, event)
}
func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
	return m.FindEventByIDFn(ctx, eventID, ownerID)
}
func (m *MockEventRepository) FindEvents(ctx context.Context, ownerID string) ([]domain.Event, error) {
	return m.FindEventsFn(ctx, ownerID)
}
func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event, ownerID string) error {
	return m.UpdateEventFn(ctx, event, ownerID)
}
func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID, ownerID string) error {
	return m.DeleteEventFn(ctx, eventID, ownerID)
}
func (m *MockEventRepository) AddEventVendor(ctx context.Context, ev domain.EventVendor, ownerID string) error {
	return m.AddEventVendorFn(ctx, ev, ownerID)
}
func (m *MockEventRepository) FindEventVendors(ctx context.Context, eventID, ownerID string) ([]domain.EventVendor, error) {
	return m.FindEventVendorsFn(ctx, eventID, ownerID)
}
func (m *MockEventRepository) UpdateEventVendor(ctx context.Context, ev domain.EventVendor, ownerID string) error {
	return m.UpdateEventVendorFn(ctx, ev, ownerID)
}
func (m *MockEventRepository) DeleteEventVendor(ctx context.Context, eventVendorID, ownerID string) error {
	return m.DeleteEventVendorFn(ctx, eventVendorID, ownerID)
}

type MockBudgetRepository struct {
	SaveDraftRabItemFn     func(ctx context.Context, item domain.DraftRabItem, ownerID string) error
	FindDraftRabItemsFn    func(ctx context.Context, eventID, ownerID string) ([]domain.DraftRabItem, error)
	FindDraftRabItemByIDFn func(ctx context.Context, itemID, ownerID string) (*domain.DraftRabItem, error)
	UpdateDraftRabItemFn   func(ctx context.Context, item domain.DraftRabItem, ownerID string) error
	DeleteDraftRabItemFn   func(ctx context.Context, itemID, ownerID string) error
	SaveExpenseFn          func(ctx context.Context, expense domain.Expense, ownerID string) error
	FindExpensesFn         func(ctx context.Context, eventID, ownerID string) ([]domain.Expense, error)
	FindExpenseByIDFn      func(ctx context.Context, expenseID, ownerID string) (*domain.Expense, error)
	UpdateExpenseFn        func(ctx context.Context, expense domain.Expense, ownerID string) error
	DeleteExpenseFn        func(ctx context.Context, expenseID, ownerID string) error
	SummarizeExpensesFn    func(ctx context.Context, ownerID string) ([]domain.EventExpenseTotals, error)
}

func (m *MockBudgetRepository) SaveDraftRabItem(ctx context.Context, item domain.DraftRabItem, ownerID string) error {
	return m.SaveDraftRabItemFn(ctx, item, ownerID)
}
func (m *MockBudgetRepository) FindDraftRabItems(ctx context.Context, eventID, ownerID string) ([]domain.DraftRabItem, error) {
	return m.FindDraftRabItemsFn(ctx, eventID, ownerID)
}
func (m *MockBudgetRepository) FindDraftRabItemByID(ctx context.Context, itemID, ownerID string) (*domain.DraftRabItem, error) {
	return m.FindDraftRabItemByIDFn(ctx, itemID, ownerID)
}
func (m *MockBudgetRepository) UpdateDraftRabItem(ctx context.Context, item domain.DraftRabItem, ownerID string) error {
	return m.UpdateDraftRabItemFn(ctx, item, ownerID)
}
func (m *MockBudgetRepository) DeleteDraftRabItem(ctx context.Context, itemID, ownerID string) error {
	return m.DeleteDraftRabItemFn(ctx, itemID, ownerID)
}
func (m *MockBudgetRepository) SaveExpense(ctx context.Context, expense domain.Expense, ownerID string) error {
	return m.SaveExpenseFn(ctx, expense, ownerID)
}
func (m *MockBudgetRepository) FindExpenses(ctx context.Context, eventID, ownerID string) ([]domain.Expense, error) {
	return m.FindExpensesFn(ctx, eventID, ownerID)
}
func (m *MockBudgetRepository) FindExpenseByID(ctx context.Context, expenseID, ownerID string) (*domain.Expense, error) {
	return m.FindExpenseByIDFn(ctx, expenseID, ownerID)
}
func (m *MockBudgetRepository) UpdateExpense(ctx context.Context, expense domain.Expense, ownerID string) error {
	return m.UpdateExpenseFn(ctx, expense, ownerID)
}
func (m *MockBudgetRepository) DeleteExpense(ctx context.Context, expenseID, ownerID string) error {
	return m.DeleteExpenseFn(ctx, expenseID, ownerID)
}
func (m *MockBudgetRepository) SummarizeExpenses(ctx context.Context, ownerID string) ([]domain.EventExpenseTotals, error) {
	return m.SummarizeExpensesFn(ctx, ownerID)
}

type MockVendorRepository struct {
	SaveVendorFn     func(ctx context.Context, vendor domain.Vendor) error
	FindVendorByIDFn func(ctx context.Context, vendorID, ownerID string) (*domain.Vendor, error)
	FindVendorsFn    func(ctx context.Context, ownerID string) ([]domain.Vendor, error)
	UpdateVendorFn   func(ctx context.Context, vendor domain.Vendor, ownerID string) error
	DeleteVendorFn   func(ctx context.Context, vendorID, ownerID string) error
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	return m.SaveVendorFn(ctx, vendor)
}
func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID, ownerID string) (*domain.Vendor, error) {
	return m.FindVendorByIDFn(ctx, vendorID, ownerID)
}
func (m *MockVendorRepository) FindVendors(ctx context.Context, ownerID string) ([]domain.Vendor, error) {
	return m.FindVendorsFn(ctx, ownerID)
}
func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor, ownerID string) error {
	return m.UpdateVendorFn(ctx, vendor, ownerID)
}
func (m *MockVendorRepository) DeleteVendor(ctx context.Context, vendorID, ownerID string) error {
	return m.DeleteVendorFn(ctx, vendorID, ownerID)
}

type MockTaskRepository struct {
	SaveTaskFn         func(ctx context.Context, task domain.Task, ownerID string) error
	FindTaskByIDFn     func(ctx context.Context, taskID, ownerID string) (*domain.Task, error)
	FindTasksFn        func(ctx context.Context, ownerID string) ([]domain.Task, error)
	FindTasksByEventFn func(ctx context.Context, eventID, ownerID string) ([]domain.Task, error)
	UpdateTaskFn       func(ctx context.Context, task domain.Task, ownerID string) error
	DeleteTaskFn       func(ctx context.Context, taskID, ownerID string) error
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task, ownerID string) error {
	return m.SaveTaskFn(ctx, task, ownerID)
}
func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID, ownerID string) (*domain.Task, error) {
	return m.FindTaskByIDFn(ctx, taskID, ownerID)
}
func (m *MockTaskRepository) FindTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return m.FindTasksFn(ctx, ownerID)
}
func (m *MockTaskRepository) FindTasksByEvent(ctx context.Context, eventID, ownerID string) ([]domain.Task, error) {
	return m.FindTasksByEventFn(ctx, eventID, ownerID)
}
func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task, ownerID string) error {
	return m.UpdateTaskFn(ctx, task, ownerID)
}
func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID, ownerID string) error {
	return m.DeleteTaskFn(ctx, taskID, ownerID)
}

type MockTemplateRepository struct {
	SaveTemplateFn     func(ctx context.Context, tpl domain.Template) error
	FindTemplateByIDFn func(ctx context.Context, templateID string) (*domain.Template, error)
	FindTemplatesFn    func(ctx context.Context) ([]domain.Template, error)
	UpdateTemplateFn   func(ctx context.Context, tpl domain.Template) error
	DeleteTemplateFn   func(ctx context.Context, templateID string) error
}

func (m *MockTemplateRepository) SaveTemplate(ctx context.Context, tpl domain.Template) error {
	return m.SaveTemplateFn(ctx, tpl)
}
func (m *MockTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.Template, error) {
	return m.FindTemplateByIDFn(ctx, templateID)
}
func (m *MockTemplateRepository) FindTemplates(ctx context.Context) ([]domain.Template, error) {
	return m.FindTemplatesFn(ctx)
}
func (m *MockTemplateRepository) UpdateTemplate(ctx context.Context, tpl domain.Template) error {
	return m.UpdateTemplateFn(ctx, tpl)
}
func (m *MockTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	return m.DeleteTemplateFn(ctx, templateID)
}
