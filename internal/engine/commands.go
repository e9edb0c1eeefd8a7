package engine

import (
	"context"
	"fmt"
)

// Action names a mutation a renderer can request.
type Action string

const (
	ActionAddRole          Action = "add_role"
	ActionDeleteRole       Action = "delete_role"
	ActionSetRolePercent   Action = "set_role_percent"
	ActionUpdateDiscount   Action = "update_discount"
	ActionUpdateCommission Action = "update_commission"
	ActionDeleteProduct    Action = "delete_product"
)

// Command is a renderer request routed through Dispatch. Only the fields the
// action needs are read: Name for add_role, RoleID for delete_role and
// set_role_percent, Value for set_role_percent and the pricing updates.
type Command struct {
	Action    Action
	ProductID string
	RoleID    string
	Name      string
	Value     float64
}

type commandFunc func(ctx context.Context, cmd Command) error

// Actions lists every action Dispatch accepts.
func Actions() []Action {
	return []Action{
		ActionAddRole,
		ActionDeleteRole,
		ActionSetRolePercent,
		ActionUpdateDiscount,
		ActionUpdateCommission,
		ActionDeleteProduct,
	}
}

func (e *Engine) commandTable() map[Action]commandFunc {
	return map[Action]commandFunc{
		ActionAddRole: func(ctx context.Context, cmd Command) error {
			_, err := e.AddRole(ctx, cmd.ProductID, cmd.Name)
			return err
		},
		ActionDeleteRole: func(ctx context.Context, cmd Command) error {
			return e.DeleteRole(ctx, cmd.ProductID, cmd.RoleID)
		},
		ActionSetRolePercent: func(ctx context.Context, cmd Command) error {
			_, err := e.SetRolePercent(ctx, cmd.ProductID, cmd.RoleID, cmd.Value)
			return err
		},
		ActionUpdateDiscount: func(ctx context.Context, cmd Command) error {
			_, err := e.UpdateDiscount(ctx, cmd.ProductID, cmd.Value)
			return err
		},
		ActionUpdateCommission: func(ctx context.Context, cmd Command) error {
			_, err := e.UpdateCommission(ctx, cmd.ProductID, cmd.Value)
			return err
		},
		ActionDeleteProduct: func(ctx context.Context, cmd Command) error {
			return e.DeleteProduct(ctx, cmd.ProductID)
		},
	}
}

// Dispatch runs the engine operation registered for cmd.Action. Renderers
// send data, never code: an action that isn't in the table is rejected with
// ErrUnknownAction.
func (e *Engine) Dispatch(ctx context.Context, cmd Command) error {
	run, ok := e.handlers[cmd.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return run(ctx, cmd)
}
