// Command greenmason is the terminal client for the GreenMason campus
// sustainability service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"greenmason/internal/apiclient"
	"greenmason/internal/config"
	"greenmason/internal/imagenorm"
	"greenmason/internal/session"
	"greenmason/internal/snap"
	"greenmason/internal/ui"
)

var (
	verbose      bool
	apiURL       string
	sessionFile  string
	ephemeral    bool
	maxDimension int
	quality      float64
	timeout      time.Duration

	logger *zap.Logger
	app    *App
)

// App holds the long-lived collaborators every command shares.
type App struct {
	Config  config.Client
	Client  *apiclient.Client
	Store   *session.Store
	Snapper *snap.Service
}

var rootCmd = &cobra.Command{
	Use:   "greenmason",
	Short: "GreenMason - sort waste, earn Green Score, climb the campus leaderboard",
	Long: `GreenMason helps the Mason community sort waste correctly.

Snap a photo of an item to learn which bin it belongs in, chat with the
sustainability assistant, make pledges and track your Green Score.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		app, err = newApp(cmd, logger)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.Store.Wait()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "GreenMason API base URL (env GREENMASON_API_URL)")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", "", "Where the claimed identity is stored")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the identity in memory only")
	rootCmd.PersistentFlags().IntVar(&maxDimension, "max-dimension", 0, "Longest side of uploaded photos in pixels")
	rootCmd.PersistentFlags().Float64Var(&quality, "quality", 0, "JPEG quality for uploaded photos, in (0, 1]")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Photo normalization deadline")

	rootCmd.AddCommand(
		claimCmd,
		whoamiCmd,
		logoutCmd,
		snapCmd,
		chatCmd,
		pledgeCmd,
		pledgesCmd,
		likeCmd,
		leaderboardCmd,
		historyCmd,
		statsCmd,
		tipCmd,
		agentsCmd,
		routeCmd,
	)
}

func newApp(cmd *cobra.Command, logger *zap.Logger) (*App, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	var cfg config.Client
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	durable, err := openDurable(cfg)
	if err != nil {
		return nil, err
	}

	client := apiclient.New(cfg.APIURL, cfg.HTTPTimeout, apiclient.WithLogger(logger))
	store := session.NewStore(client, durable, logger)
	normalizer := imagenorm.New(
		imagenorm.WithMaxDimension(cfg.MaxDimension),
		imagenorm.WithQuality(cfg.JPEGQuality),
		imagenorm.WithTimeout(cfg.NormalizeTimeout),
		imagenorm.WithLogger(logger),
	)

	return &App{
		Config:  cfg,
		Client:  client,
		Store:   store,
		Snapper: snap.NewService(normalizer, client, store, logger),
	}, nil
}

// applyFlags overrides environment values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Client) {
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = apiURL
	}
	if flags.Changed("session-file") {
		cfg.SessionFile = sessionFile
	}
	if flags.Changed("max-dimension") {
		cfg.MaxDimension = maxDimension
	}
	if flags.Changed("quality") {
		cfg.JPEGQuality = quality
	}
	if flags.Changed("timeout") {
		cfg.NormalizeTimeout = timeout
	}
}

func openDurable(cfg config.Client) (session.Durable, error) {
	if ephemeral {
		return session.NewMemoryDurable(), nil
	}
	path := cfg.SessionFile
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve session file: %w", err)
		}
	}
	return session.NewFileDurable(path), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}
