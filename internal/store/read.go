package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/planora/planora/internal/model"
)

// LoadPlan reads the persisted plan back. Returns (nil, nil) when the
// database has never been saved to; the caller starts from the template
// plan in that case.
func (s *Store) LoadPlan(ctx context.Context) (*model.Plan, error) {
	p := &model.Plan{
		Expenses:    []model.ExpenseItem{},
		Guests:      []model.Guest{},
		GuestGroups: []model.GuestGroup{},
	}

	err := s.db.QueryRowContext(ctx, "SELECT budget_total FROM plan_meta WHERE id = 1").
		Scan(&p.BudgetTotal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}

	if err := s.readGroups(ctx, p); err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if err := s.readGuests(ctx, p); err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if err := s.readExpenses(ctx, p); err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	return p, nil
}

func (s *Store) readGroups(ctx context.Context, p *model.Plan) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, color FROM guest_groups ORDER BY rowid")
	if err != nil {
		return fmt.Errorf("read groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var gr model.GuestGroup
		if err := rows.Scan(&gr.ID, &gr.Name, &gr.Color); err != nil {
			return fmt.Errorf("scan group: %w", err)
		}
		p.GuestGroups = append(p.GuestGroups, gr)
	}
	return rows.Err()
}

func (s *Store) readGuests(ctx context.Context, p *model.Plan) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, group_id, confirmed, parent_id, priority, photo_url, is_root
		FROM guests ORDER BY rowid
	`)
	if err != nil {
		return fmt.Errorf("read guests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g model.Guest
		var isRoot sql.NullBool
		if err := rows.Scan(&g.ID, &g.Name, &g.GroupID, &g.Confirmed,
			&g.ParentID, &g.Priority, &g.PhotoURL, &isRoot); err != nil {
			return fmt.Errorf("scan guest: %w", err)
		}
		if isRoot.Valid {
			v := isRoot.Bool
			g.IsRoot = &v
		}
		p.Guests = append(p.Guests, g)
	}
	return rows.Err()
}

func (s *Store) readExpenses(ctx context.Context, p *model.Plan) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, supplier, estimated_value, actual_value, is_contracted, include_item
		FROM expenses ORDER BY rowid
	`)
	if err != nil {
		return fmt.Errorf("read expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e model.ExpenseItem
		if err := rows.Scan(&e.ID, &e.Category, &e.Supplier,
			&e.EstimatedValue, &e.ActualValue, &e.IsContracted, &e.Include); err != nil {
			return fmt.Errorf("scan expense: %w", err)
		}
		p.Expenses = append(p.Expenses, e)
	}
	return rows.Err()
}
