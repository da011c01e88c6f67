package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"greenmason/internal/imagenorm"
	"greenmason/internal/models"
	"greenmason/internal/session"
	"greenmason/internal/ui"
)

var snapCmd = &cobra.Command{
	Use:   "snap <photo>",
	Short: "Identify an item from a photo and learn which bin it goes in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bootstrap(cmd)
		src, err := imagenorm.ReadFile(args[0])
		if err != nil {
			return err
		}

		upload := app.Snapper.Prepare(cmd.Context(), src)
		if upload.Normalized {
			logger.Debug("photo normalized",
				zap.Int("width", upload.Width), zap.Int("height", upload.Height), zap.Int("bytes", len(upload.Data)))
		} else {
			fmt.Fprintln(os.Stderr, ui.WarningStyle.Render("Could not shrink the photo, sending the original."))
		}

		res, err := app.Snapper.Analyze(cmd.Context(), upload)
		if err != nil {
			return fmt.Errorf("%w\nCheck your connection and try `greenmason snap %s` again", err, args[0])
		}
		fmt.Println(ui.Classification(res.Classification))
		switch {
		case res.Score != nil:
			fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("Green Score is now %d.", res.Score.NewTotal)))
		case errors.Is(res.RecordErr, session.ErrAnonymous):
			fmt.Println(ui.MutedStyle.Render("Claim a name to keep these points."))
		case res.RecordErr != nil:
			fmt.Println(ui.WarningStyle.Render("Points could not be saved right now."))
		}
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the sustainability assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bootstrap(cmd)
		resp, err := app.Client.Chat(cmd.Context(), strings.Join(args, " "), nil)
		if err != nil {
			return err
		}
		fmt.Println(ui.Chat(resp))
		_, err = app.Store.RecordAction(cmd.Context(), models.ActionChat, models.PointsChat, "Chatted with the assistant")
		if err != nil && !errors.Is(err, session.ErrAnonymous) {
			logger.Warn("chat: could not record action", zap.Error(err))
		}
		return nil
	},
}

var pledgeCmd = &cobra.Command{
	Use:   "pledge <text>",
	Short: "Make a public sustainability pledge",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := requireIdentity(cmd)
		if err != nil {
			return err
		}
		text := strings.Join(args, " ")
		if len(text) > models.MaxPledgeLength {
			return fmt.Errorf("pledge is %d characters, the limit is %d", len(text), models.MaxPledgeLength)
		}
		p, err := app.Client.CreatePledge(cmd.Context(), snap.Identity.Username, text)
		if err != nil {
			return err
		}
		app.Store.Refresh(cmd.Context())
		fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("Pledge saved (+%d points).", models.PointsPledge)))
		fmt.Println(ui.MutedStyle.Render(p.ID))
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <pledge-id>",
	Short: "Like someone's pledge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Client.LikePledge(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(ui.SuccessStyle.Render("Liked."))
		return nil
	},
}
