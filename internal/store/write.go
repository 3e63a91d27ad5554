package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/planora/planora/internal/delta"
	"github.com/planora/planora/internal/model"
)

// SaveFull replaces the entire persisted plan in one transaction.
// Chosen by the sync layer when most of the dataset changed; one rewrite
// beats many small statements at that point.
func (s *Store) SaveFull(ctx context.Context, p *model.Plan) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save full: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"guests", "guest_groups", "expenses"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("save full: clear %s: %w", table, err)
		}
	}

	if err := upsertBudget(ctx, tx, p.BudgetTotal); err != nil {
		return fmt.Errorf("save full: %w", err)
	}
	for _, gr := range p.GuestGroups {
		if err := upsertGroup(ctx, tx, gr); err != nil {
			return fmt.Errorf("save full: %w", err)
		}
	}
	for _, g := range p.Guests {
		if err := upsertGuest(ctx, tx, g); err != nil {
			return fmt.Errorf("save full: %w", err)
		}
	}
	for _, e := range p.Expenses {
		if err := upsertExpense(ctx, tx, e); err != nil {
			return fmt.Errorf("save full: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save full: %w", err)
	}
	return nil
}

// SaveDelta applies a change set in one transaction. Creates and updates
// share the upsert path, so replaying an already-applied delta is
// harmless (a stale baseline resends changes, it never corrupts).
func (s *Store) SaveDelta(ctx context.Context, d delta.Delta) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save delta: %w", err)
	}
	defer tx.Rollback()

	if d.BudgetTotal != nil {
		if err := upsertBudget(ctx, tx, *d.BudgetTotal); err != nil {
			return fmt.Errorf("save delta: %w", err)
		}
	}

	for _, gr := range append(d.GuestGroups.Created, d.GuestGroups.Updated...) {
		if err := upsertGroup(ctx, tx, gr); err != nil {
			return fmt.Errorf("save delta: %w", err)
		}
	}
	for _, id := range d.GuestGroups.Deleted {
		if _, err := tx.ExecContext(ctx, "DELETE FROM guest_groups WHERE id = ?", id); err != nil {
			return fmt.Errorf("save delta: delete group %s: %w", id, err)
		}
	}

	for _, g := range append(d.Guests.Created, d.Guests.Updated...) {
		if err := upsertGuest(ctx, tx, g); err != nil {
			return fmt.Errorf("save delta: %w", err)
		}
	}
	for _, id := range d.Guests.Deleted {
		if _, err := tx.ExecContext(ctx, "DELETE FROM guests WHERE id = ?", id); err != nil {
			return fmt.Errorf("save delta: delete guest %s: %w", id, err)
		}
	}

	for _, e := range append(d.Expenses.Created, d.Expenses.Updated...) {
		if err := upsertExpense(ctx, tx, e); err != nil {
			return fmt.Errorf("save delta: %w", err)
		}
	}
	for _, id := range d.Expenses.Deleted {
		if _, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id); err != nil {
			return fmt.Errorf("save delta: delete expense %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save delta: %w", err)
	}
	return nil
}

func upsertBudget(ctx context.Context, tx *sql.Tx, total float64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO plan_meta (id, budget_total) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET budget_total = excluded.budget_total
	`, total)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}

func upsertGroup(ctx context.Context, tx *sql.Tx, gr model.GuestGroup) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO guest_groups (id, name, color) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color
	`, gr.ID, gr.Name, gr.Color)
	if err != nil {
		return fmt.Errorf("upsert group %s: %w", gr.ID, err)
	}
	return nil
}

func upsertGuest(ctx context.Context, tx *sql.Tx, g model.Guest) error {
	var isRoot sql.NullBool
	if g.IsRoot != nil {
		isRoot = sql.NullBool{Bool: *g.IsRoot, Valid: true}
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO guests (id, name, group_id, confirmed, parent_id, priority, photo_url, is_root)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			group_id = excluded.group_id,
			confirmed = excluded.confirmed,
			parent_id = excluded.parent_id,
			priority = excluded.priority,
			photo_url = excluded.photo_url,
			is_root = excluded.is_root
	`, g.ID, g.Name, g.GroupID, g.Confirmed, g.ParentID, g.Priority, g.PhotoURL, isRoot)
	if err != nil {
		return fmt.Errorf("upsert guest %s: %w", g.ID, err)
	}
	return nil
}

func upsertExpense(ctx context.Context, tx *sql.Tx, e model.ExpenseItem) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO expenses (id, category, supplier, estimated_value, actual_value, is_contracted, include_item)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			supplier = excluded.supplier,
			estimated_value = excluded.estimated_value,
			actual_value = excluded.actual_value,
			is_contracted = excluded.is_contracted,
			include_item = excluded.include_item
	`, e.ID, e.Category, e.Supplier, e.EstimatedValue, e.ActualValue, e.IsContracted, e.Include)
	if err != nil {
		return fmt.Errorf("upsert expense %s: %w", e.ID, err)
	}
	return nil
}
