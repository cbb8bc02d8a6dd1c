package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Timmy6942025/pd/internal/config"
	"github.com/Timmy6942025/pd/internal/flatpak"
	"github.com/Timmy6942025/pd/internal/logging"
	"github.com/Timmy6942025/pd/internal/pacman"
	"github.com/Timmy6942025/pd/internal/pager"
	"github.com/Timmy6942025/pd/internal/render"
	"github.com/Timmy6942025/pd/internal/runner"
	"github.com/Timmy6942025/pd/internal/search"
)

// Version is set via -ldflags.
var Version = "dev"

var errUsage = errors.New("Usage: pd <search-term>")

type rootOptions struct {
	configPath  string
	verbose     bool
	noColor     bool
	printConfig bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pd [flags] <search-term>",
		Short: "Search pacman, the AUR and Flatpak in one go",
		Long: `pd searches the distribution repositories (pacman), the AUR (yay) and
Flatpak remotes in parallel and shows the combined results in a pager.

All arguments after the flags are joined with spaces into one search term.
Use -- to search for a term that starts with a dash.

Examples:
  pd firefox
  pd --no-color gnome calculator
  pd -- -git`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return runSearch(opts, args, stdout, stderr)
		},
	}

	// Everything from the first positional argument on belongs to the term.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/pd/config.toml)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log per-source timings and failures to stderr")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "render results without ANSI styling")
	cmd.Flags().BoolVar(&opts.printConfig, "print-config", false, "print the effective configuration as TOML and exit")

	return cmd
}

func runSearch(opts *rootOptions, args []string, stdout, stderr io.Writer) error {
	if !opts.printConfig && len(args) == 0 {
		return &exitError{code: 1, err: errUsage}
	}
	term := strings.Join(args, " ")

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.noColor {
		cfg.Color = false
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	if opts.printConfig {
		out, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	logger := logging.New(stderr, cfg.LogLevel)
	tools := runner.ExecRunner{Stderr: stderr}

	agg := &search.Aggregator{Logger: logger}
	if cfg.Sources.System.Enabled {
		agg.System = pacman.NewSystem(tools)
	}
	if cfg.Sources.User.Enabled {
		agg.User = pacman.NewUser(tools)
	}
	if cfg.Sources.Sandboxed.Enabled {
		agg.Sandboxed = flatpak.New(tools)
	}

	results := agg.Aggregate(term)
	logger.Debug("search complete",
		"term", term,
		"system", len(results.System),
		"user", len(results.User),
		"sandboxed", len(results.Sandboxed),
	)

	p := &pager.Pager{
		Command: cfg.Pager.Command,
		Args:    cfg.Pager.Args,
		Stdout:  stdout,
		Stderr:  stderr,
	}
	return p.Page(render.New(cfg.Color).Render(results))
}
