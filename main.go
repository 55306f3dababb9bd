package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danielhkuo/poll-tracker/cliparse"
	"github.com/danielhkuo/poll-tracker/console"
	"github.com/danielhkuo/poll-tracker/generator"
	"github.com/danielhkuo/poll-tracker/middleware"
	"github.com/danielhkuo/poll-tracker/router"
	"github.com/danielhkuo/poll-tracker/store"
	"github.com/danielhkuo/poll-tracker/visualize"
)

var rootCmd = &cobra.Command{
	Use:   "poll-tracker",
	Short: "Track election polls as star bar charts",
	Long: `poll-tracker follows an election across several polls, generating
random but consistent polls or taking them from the user, and draws each
party's projected seats or vote share as a bar of stars.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:                "generate [flags]",
	Short:              "Print a random poll list and its aggregate",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(args)
		if err != nil {
			return err
		}

		metric, err := visualize.ParseMetric(cfg.Metric)
		if err != nil {
			return err
		}
		gen := generator.New(cfg.Seats, nil)
		if cfg.Seed != nil {
			gen = generator.NewSeeded(cfg.Seats, *cfg.Seed)
		}
		list := gen.GeneratePollList(cfg.NumPolls, cfg.Parties)
		return console.WriteReport(cmd.OutOrStdout(), newRenderer(cfg), list, cfg.Parties, metric)
	},
}

var interactiveCmd = &cobra.Command{
	Use:                "interactive [flags]",
	Short:              "Enter or generate polls in an interactive session",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(args)
		if err != nil {
			return err
		}

		opts := []console.Option{console.WithRenderer(newRenderer(cfg))}
		if cfg.Seed != nil {
			opts = append(opts, console.WithSeed(*cfg.Seed))
		}
		return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run()
	},
}

var serveCmd = &cobra.Command{
	Use:                "serve [flags]",
	Short:              "Serve poll trackers over HTTP",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(args)
		if err != nil {
			return err
		}
		if err := cfg.ValidateServe(); err != nil {
			return err
		}
		return serve(cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd, interactiveCmd, serveCmd)
}

// setup parses the subcommand's flags and installs the logger
func setup(args []string) (cliparse.Config, error) {
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return cfg, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))
	return cfg, nil
}

// newRenderer only enables colored bars when stdout is a terminal
func newRenderer(cfg cliparse.Config) *visualize.Renderer {
	fd := os.Stdout.Fd()
	styled := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return visualize.NewRenderer(
		visualize.WithMaxStars(cfg.MaxStars),
		visualize.WithStyle(styled),
	)
}

func serve(cfg cliparse.Config) error {
	mux := router.NewRouter(store.New(), cfg)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	slog.Info("Server closed")
	return nil
}

func main() {
	err := rootCmd.Execute()
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("poll-tracker failed", "error", err)
		os.Exit(1)
	}
}
