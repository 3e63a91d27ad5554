package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/planora/planora/internal/importer"
	"github.com/planora/planora/internal/session"
	"github.com/planora/planora/internal/store"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a portable plan file, replacing the stored plan",
		Long: `Import a portable YAML plan file.

Guests reference groups and inviters by name; fresh ids are synthesized
on import. The imported plan replaces whatever the database held.

Example:
  planora import guests.yaml --db wedding.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	plan, err := importer.New().ImportFile(path)
	if err != nil {
		out.Error(err.Error())
		return WrapExitError(ExitFailure, "import failed", err)
	}

	db, err := store.Open(opts.DBPath)
	if err != nil {
		out.Error(err.Error())
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer db.Close()

	// An import is a wholesale replacement: load it into a fresh session
	// and force a full-state write regardless of what changed.
	sess, err := session.New(nil)
	if err != nil {
		return WrapExitError(ExitFailure, "start session", err)
	}
	if err := sess.Load(plan); err != nil {
		return WrapExitError(ExitFailure, "load imported plan", err)
	}
	if err := db.SaveFull(cmd.Context(), sess.Plan()); err != nil {
		out.Error(err.Error())
		return WrapExitError(ExitFailure, "persist imported plan", err)
	}

	slog.Info("plan imported",
		"file", path,
		"guests", len(plan.Guests),
		"groups", len(plan.GuestGroups),
		"expenses", len(plan.Expenses))

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"guests":   len(plan.Guests),
			"groups":   len(plan.GuestGroups),
			"expenses": len(plan.Expenses),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d guests, %d groups, %d expenses\n",
		len(plan.Guests), len(plan.GuestGroups), len(plan.Expenses))
	return nil
}
