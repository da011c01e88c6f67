package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"greenmason/internal/ui"
)

var (
	pledgesLimit     int
	leaderboardLimit int
	tipAudioPath     string
)

var pledgesCmd = &cobra.Command{
	Use:   "pledges",
	Short: "Show the community pledge wall",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := app.Client.Pledges(cmd.Context(), pledgesLimit)
		if err != nil {
			return err
		}
		fmt.Println(ui.Pledges(list))
		return nil
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the campus Green Score leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := bootstrap(cmd)
		board, err := app.Client.Leaderboard(cmd.Context(), leaderboardLimit)
		if err != nil {
			return err
		}
		var username string
		if snap.Identity != nil {
			username = snap.Identity.Username
		}
		fmt.Println(ui.Leaderboard(board, username))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show community-wide impact numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := app.Client.Stats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(ui.Stats(stats))
		return nil
	},
}

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Get a sustainability tip",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tipAudioPath == "" {
			tip, err := app.Client.TipText(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(tip)
			return nil
		}

		audio, tip, err := app.Client.TipAudio(cmd.Context())
		if err != nil {
			return err
		}
		if err := os.WriteFile(tipAudioPath, audio, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", tipAudioPath, err)
		}
		fmt.Println(tip)
		fmt.Println(ui.MutedStyle.Render("Audio saved to " + tipAudioPath))
		return nil
	},
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List PatriotAI campus agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := app.Client.Agents(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(ui.HeaderStyle.Render(dir.Platform))
		for _, a := range dir.Agents {
			fmt.Println(ui.PointsStyle.Render(a.Name) + "  " + a.Description)
		}
		fmt.Println(ui.MutedStyle.Render(dir.URL))
		return nil
	},
}

var routeCmd = &cobra.Command{
	Use:   "route <message>",
	Short: "Check whether a PatriotAI agent is a better fit for a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decision, err := app.Client.Route(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if !decision.ShouldRoute || decision.Route == nil {
			fmt.Println(ui.MutedStyle.Render("GreenMason can help with that directly."))
			return nil
		}
		fmt.Println(ui.WarningStyle.Render(decision.Reason))
		fmt.Println(ui.PointsStyle.Render(decision.Route.AgentName) + "  " + decision.Route.AgentURL)
		return nil
	},
}

func init() {
	pledgesCmd.Flags().IntVar(&pledgesLimit, "limit", 20, "Number of pledges to show")
	leaderboardCmd.Flags().IntVar(&leaderboardLimit, "limit", 10, "Number of entries to show")
	tipCmd.Flags().StringVar(&tipAudioPath, "audio", "", "Also save the spoken tip to this MP3 file")
}
