package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func NewBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

const draftRabColumns = `r.draft_rab_item_id, r.event_id, r.category, r.item, r.specification,
	r.qty, r.qty_type, r.frequency, r.frequency_type,
	r.unit_price_rab, r.total_price_rab, r.unit_price_real, r.total_price_real, r.remarks`

func scanDraftRabItem(row pgx.Row) (*domain.DraftRabItem, error) {
	var d domain.DraftRabItem
	err := row.Scan(
		&d.DraftRabItemID,
		&d.EventID,
		&d.Category,
		&d.Item,
		&d.Specification,
		&d.Qty,
		&d.QtyType,
		&d.Frequency,
		&d.FrequencyType,
		&d.UnitPriceRab,
		&d.TotalPriceRab,
		&d.UnitPriceReal,
		&d.TotalPriceReal,
		&d.Remarks,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan draft RAB row: %w", err)
	}
	return &d, nil
}

func (r *PgxBudgetRepository) SaveDraftRabItem(ctx context.Context, item domain.DraftRabItem, ownerID string) error {
	query := `
		INSERT INTO draft_rab_items (draft_rab_item_id, event_id, category, item, specification,
			qty, qty_type, frequency, frequency_type,
			unit_price_rab, total_price_rab, unit_price_real, total_price_real, remarks)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		WHERE EXISTS (SELECT 1 FROM events WHERE event_id = $2 AND created_by = $15);
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.DraftRabItemID, item.EventID, item.Category, item.Item, item.Specification,
		item.Qty, item.QtyType, item.Frequency, item.FrequencyType,
		item.UnitPriceRab, item.TotalPriceRab, item.UnitPriceReal, item.TotalPriceReal, item.Remarks,
		ownerID)
	if err != nil {
		return mapWriteError(err, "save draft RAB item")
	}
	return requireRow(tag, "event")
}

func (r *PgxBudgetRepository) FindDraftRabItems(ctx context.Context, eventID, ownerID string) ([]domain.DraftRabItem, error) {
	query := `
		SELECT ` + draftRabColumns + `
		FROM draft_rab_items r
		JOIN events e ON e.event_id = r.event_id
		WHERE r.event_id = $1 AND e.created_by = $2
		ORDER BY r.category ASC, r.item ASC;
	`
	rows, err := r.Pool.Query(ctx, query, eventID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query draft RAB items: %w", err)
	}
	defer rows.Close()

	items := []domain.DraftRabItem{}
	for rows.Next() {
		d, err := scanDraftRabItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating draft RAB rows: %w", rows.Err())
	}
	return items, nil
}

func (r *PgxBudgetRepository) FindDraftRabItemByID(ctx context.Context, itemID, ownerID string) (*domain.DraftRabItem, error) {
	query := `
		SELECT ` + draftRabColumns + `
		FROM draft_rab_items r
		JOIN events e ON e.event_id = r.event_id
		WHERE r.draft_rab_item_id = $1 AND e.created_by = $2;
	`
	return scanDraftRabItem(r.Pool.QueryRow(ctx, query, itemID, ownerID))
}

func (r *PgxBudgetRepository) UpdateDraftRabItem(ctx context.Context, item domain.DraftRabItem, ownerID string) error {
	query := `
		UPDATE draft_rab_items r
		SET category = $1, item = $2, specification = $3, qty = $4, qty_type = $5,
			frequency = $6, frequency_type = $7, unit_price_rab = $8, total_price_rab = $9,
			unit_price_real = $10, total_price_real = $11, remarks = $12
		FROM events e
		WHERE e.event_id = r.event_id AND r.draft_rab_item_id = $13 AND e.created_by = $14;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.Category, item.Item, item.Specification, item.Qty, item.QtyType,
		item.Frequency, item.FrequencyType, item.UnitPriceRab, item.TotalPriceRab,
		item.UnitPriceReal, item.TotalPriceReal, item.Remarks,
		item.DraftRabItemID, ownerID)
	if err != nil {
		return mapWriteError(err, "update draft RAB item")
	}
	return requireRow(tag, "draft RAB item")
}

func (r *PgxBudgetRepository) DeleteDraftRabItem(ctx context.Context, itemID, ownerID string) error {
	query := `
		DELETE FROM draft_rab_items r
		USING events e
		WHERE e.event_id = r.event_id AND r.draft_rab_item_id = $1 AND e.created_by = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, itemID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete draft RAB item: %w", err)
	}
	return requireRow(tag, "draft RAB item")
}

const expenseColumns = `x.expense_id, x.event_id, x.description, x.category,
	x.estimated_amount, x.actual_amount, x.status, x.date, x.vendor_id`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var x domain.Expense
	err := row.Scan(
		&x.ExpenseID,
		&x.EventID,
		&x.Description,
		&x.Category,
		&x.EstimatedAmount,
		&x.ActualAmount,
		&x.Status,
		&x.Date,
		&x.VendorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan expense row: %w", err)
	}
	return &x, nil
}

func (r *PgxBudgetRepository) SaveExpense(ctx context.Context, expense domain.Expense, ownerID string) error {
	query := `
		INSERT INTO expenses (expense_id, event_id, description, category,
			estimated_amount, actual_amount, status, date, vendor_id)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
		WHERE EXISTS (SELECT 1 FROM events WHERE event_id = $2 AND created_by = $10);
	`
	tag, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID, expense.EventID, expense.Description, expense.Category,
		expense.EstimatedAmount, expense.ActualAmount, expense.Status, expense.Date, expense.VendorID,
		ownerID)
	if err != nil {
		return mapWriteError(err, "save expense")
	}
	return requireRow(tag, "event")
}

func (r *PgxBudgetRepository) FindExpenses(ctx context.Context, eventID, ownerID string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses x
		JOIN events e ON e.event_id = x.event_id
		WHERE x.event_id = $1 AND e.created_by = $2
		ORDER BY x.date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, eventID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		x, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *x)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return expenses, nil
}

func (r *PgxBudgetRepository) FindExpenseByID(ctx context.Context, expenseID, ownerID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses x
		JOIN events e ON e.event_id = x.event_id
		WHERE x.expense_id = $1 AND e.created_by = $2;
	`
	return scanExpense(r.Pool.QueryRow(ctx, query, expenseID, ownerID))
}

func (r *PgxBudgetRepository) UpdateExpense(ctx context.Context, expense domain.Expense, ownerID string) error {
	query := `
		UPDATE expenses x
		SET description = $1, category = $2, estimated_amount = $3, actual_amount = $4,
			status = $5, vendor_id = $6
		FROM events e
		WHERE e.event_id = x.event_id AND x.expense_id = $7 AND e.created_by = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		expense.Description, expense.Category, expense.EstimatedAmount, expense.ActualAmount,
		expense.Status, expense.VendorID,
		expense.ExpenseID, ownerID)
	if err != nil {
		return mapWriteError(err, "update expense")
	}
	return requireRow(tag, "expense")
}

func (r *PgxBudgetRepository) DeleteExpense(ctx context.Context, expenseID, ownerID string) error {
	query := `
		DELETE FROM expenses x
		USING events e
		WHERE e.event_id = x.event_id AND x.expense_id = $1 AND e.created_by = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, expenseID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireRow(tag, "expense")
}

func (r *PgxBudgetRepository) SummarizeExpenses(ctx context.Context, ownerID string) ([]domain.EventExpenseTotals, error) {
	query := `
		SELECT e.event_id, e.name,
			COALESCE(SUM(x.estimated_amount), 0),
			COALESCE(SUM(x.actual_amount), 0),
			COALESCE(SUM(x.actual_amount) FILTER (WHERE x.status = 'PAID'), 0),
			COALESCE(SUM(x.actual_amount) FILTER (WHERE x.status = 'UNPAID'), 0)
		FROM events e
		LEFT JOIN expenses x ON x.event_id = e.event_id
		WHERE e.created_by = $1
		GROUP BY e.event_id, e.name
		ORDER BY e.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	defer rows.Close()

	totals := []domain.EventExpenseTotals{}
	for rows.Next() {
		var t domain.EventExpenseTotals
		if err := rows.Scan(&t.EventID, &t.EventName, &t.Estimated, &t.Actual, &t.Paid, &t.Unpaid); err != nil {
			return nil, fmt.Errorf("failed to scan expense summary row: %w", err)
		}
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense summary rows: %w", rows.Err())
	}
	return totals, nil
}
