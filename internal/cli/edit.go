package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/planora/planora/internal/history"
)

// NewConfirmCommand creates the confirm command: toggle a guest's
// confirmation and persist the resulting delta.
func NewConfirmCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "confirm <guest-id>",
		Short:         "Toggle a guest's confirmation flag",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, cmd, history.ToggleGuestConfirmed{ID: args[0]},
				fmt.Sprintf("no guest with id %q", args[0]))
		},
	}
}

// NewBudgetCommand creates the budget command: set the plan's budget
// total and persist the resulting delta.
func NewBudgetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "budget <amount>",
		Short:         "Set the overall budget total",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid amount", err)
			}
			return runEdit(rootOpts, cmd, history.SetBudgetTotal{Total: amount},
				"budget unchanged")
		},
	}
}

// runEdit applies one action to the stored plan and syncs it back. The
// no-op path (unknown id, unchanged value) exits nonzero without writing.
func runEdit(opts *RootOptions, cmd *cobra.Command, action history.Action, noopMsg string) error {
	sess, db, err := loadSession(opts, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if !sess.Execute(action) {
		out.Error(noopMsg)
		return WrapExitError(ExitFailure, noopMsg, nil)
	}

	res, err := sess.Sync(cmd.Context(), db)
	if err != nil {
		out.Error(err.Error())
		return WrapExitError(ExitFailure, "sync failed", err)
	}

	slog.Debug("edit synced", "strategy", res.Strategy.String(), "changes", res.Changes)

	if opts.Format == "json" {
		return out.Success(res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved (%s sync, %d changes)\n", res.Strategy, res.Changes)
	return nil
}
