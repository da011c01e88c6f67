package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"greenmason/internal/session"
	"greenmason/internal/ui"
)

// bootstrap restores the persisted identity and waits for its profile.
func bootstrap(cmd *cobra.Command) session.Snapshot {
	app.Store.Bootstrap(cmd.Context())
	app.Store.Wait()
	return app.Store.Snapshot()
}

func requireIdentity(cmd *cobra.Command) (session.Snapshot, error) {
	snap := bootstrap(cmd)
	if snap.State != session.Identified {
		return snap, fmt.Errorf("%w: run `greenmason claim <name>` first", session.ErrAnonymous)
	}
	return snap, nil
}

var claimCmd = &cobra.Command{
	Use:   "claim <name>",
	Short: "Claim a display name and start earning Green Score",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bootstrap(cmd)
		ident, err := app.Store.ClaimIdentity(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			if errors.Is(err, session.ErrInvalidName) {
				return fmt.Errorf("name must contain at least one letter or digit")
			}
			return err
		}
		fmt.Println(ui.SuccessStyle.Render("Welcome, " + ident.DisplayName + "!"))
		fmt.Println(ui.Profile(app.Store.Snapshot()))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the claimed identity and Green Score",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.Profile(bootstrap(cmd)))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the claimed identity on this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		bootstrap(cmd)
		if err := app.Store.Clear(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println(ui.MutedStyle.Render("Signed out."))
		return nil
	},
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your recent actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := requireIdentity(cmd)
		if err != nil {
			return err
		}
		resp, err := app.Client.UserActions(cmd.Context(), snap.Identity.Username, historyLimit)
		if err != nil {
			return err
		}
		if len(resp.Actions) == 0 {
			fmt.Println(ui.MutedStyle.Render("No actions yet."))
			return nil
		}
		for _, a := range resp.Actions {
			fmt.Printf("%s  %-9s %s  %s\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				a.Action,
				ui.PointsStyle.Render(fmt.Sprintf("+%d", a.Points)),
				a.Description)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of actions to show")
}
