package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planora/planora/internal/model"
	"github.com/planora/planora/internal/session"
	"github.com/planora/planora/internal/store"
	"github.com/planora/planora/internal/tree"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Top int
}

// NewReportCommand creates the report command group.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Read-only projections of the stored plan",
	}

	treeCmd := &cobra.Command{
		Use:           "tree",
		Short:         "Show the invitation forest grouped by root guest",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeReport(opts, cmd)
		},
	}

	influencersCmd := &cobra.Command{
		Use:           "influencers",
		Short:         "Rank guests by how many people they brought",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfluencersReport(opts, cmd)
		},
	}
	influencersCmd.Flags().IntVar(&opts.Top, "top", 10, "number of guests to show (0 = all)")

	budgetCmd := &cobra.Command{
		Use:           "budget",
		Short:         "Show budget totals against tracked expenses",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudgetReport(opts, cmd)
		},
	}

	cmd.AddCommand(treeCmd, influencersCmd, budgetCmd)
	return cmd
}

// loadSession opens the database and starts a session on the stored plan
// (template when the database is fresh).
func loadSession(opts *RootOptions, cmd *cobra.Command) (*session.Session, *store.Store, error) {
	db, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "open database", err)
	}
	sess, err := session.Open(cmd.Context(), db)
	if err != nil {
		db.Close()
		return nil, nil, WrapExitError(ExitFailure, "load plan", err)
	}
	return sess, db, nil
}

func runTreeReport(opts *ReportOptions, cmd *cobra.Command) error {
	sess, db, err := loadSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	plan := sess.Plan()
	nodes := tree.Build(plan.Guests)
	groups := tree.GroupByRoot(plan.Guests, nodes)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(map[string]any{"roots": groups, "nodes": nodes})
	}

	w := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintln(w, "no guests")
		return nil
	}
	for _, g := range groups {
		root := nodes[g.RootID]
		fmt.Fprintf(w, "%s (brought %d)\n", g.RootName, root.ChildCount)
		for _, id := range g.GuestIDs {
			n := nodes[id]
			indent := strings.Repeat("  ", n.Level)
			fmt.Fprintf(w, "%s%s  [%s]\n", indent, guestName(plan, id), tree.ChainLabel(n))
		}
	}
	return nil
}

func runInfluencersReport(opts *ReportOptions, cmd *cobra.Command) error {
	sess, db, err := loadSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	plan := sess.Plan()
	nodes := tree.Build(plan.Guests)
	ranking := tree.TopInfluencers(plan.Guests, nodes, opts.Top)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(ranking)
	}

	w := cmd.OutOrStdout()
	if len(ranking) == 0 {
		fmt.Fprintln(w, "no guest has brought anyone yet")
		return nil
	}
	for i, r := range ranking {
		fmt.Fprintf(w, "%2d. %s (%d)\n", i+1, r.Name, r.ChildCount)
	}
	return nil
}

func runBudgetReport(opts *ReportOptions, cmd *cobra.Command) error {
	sess, db, err := loadSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	s := sess.Plan().Summarize()

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(s)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "budget:    %.2f\n", s.BudgetTotal)
	fmt.Fprintf(w, "estimated: %.2f\n", s.Estimated)
	fmt.Fprintf(w, "committed: %.2f\n", s.Committed)
	fmt.Fprintf(w, "remaining: %.2f\n", s.Remaining)
	return nil
}

func guestName(p *model.Plan, id string) string {
	if g := p.GuestByID(id); g != nil {
		return g.Name
	}
	return id
}
