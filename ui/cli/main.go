// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Cardinput using the Cobra
// library. It defines the root command, which runs the interactive card
// form, the persistent flags and the main entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/cardinput/buildvars"
	"github.com/toeirei/cardinput/internal/config"
	"github.com/toeirei/cardinput/internal/i18n"
	"github.com/toeirei/cardinput/internal/logging"
	"github.com/toeirei/cardinput/ui"
	"github.com/toeirei/cardinput/ui/tui"
	"github.com/toeirei/cardinput/ui/tui/models/views/root"
	"golang.org/x/term"
)

const modulePath = "github.com/toeirei/cardinput"

var ErrNoTerminal = errors.New("the card form needs an interactive terminal")

var appConfig config.Config

// runForm is replaced in tests.
var runForm = tui.Run

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := ui.InitializeDefaults(appConfig); err != nil {
		return fmt.Errorf("error applying config: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetDebug(true)
	}
	logging.Debugf("config loaded (language=%s, log_level=%s)", i18n.GetLang(), appConfig.LogLevel)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cardinput",
		Short: "Cardinput asks for card details in the terminal.",
		Long: `Cardinput shows a form for card number, holder name, expiration date
and security code. The card number is grouped in blocks of four while you
type and focus moves on once it is complete. The expiration date is chosen
from a month and year picker.

Running without a subcommand launches the form and prints the entered
values as YAML once it is submitted.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runRoot,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("lang", "", fmt.Sprintf("interface language (%s)", strings.Join(i18n.Locales(), ", ")))
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file while the form is shown")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cmd.Flags().String("prefill", "", "yaml file with values to start the form with")

	cmd.AddCommand(
		newFormatCmd(),
		newExpiryCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return ErrNoTerminal
	}

	opts := tui.OptionsFromConfig(appConfig)
	if path, _ := cmd.Flags().GetString("prefill"); path != "" {
		initial, err := readPrefill(path)
		if err != nil {
			return err
		}
		opts.Initial = initial
	}

	restore, err := ui.RedirectLogs(appConfig)
	if err != nil {
		return err
	}
	details, err := runForm(opts)
	restore()

	if errors.Is(err, root.ErrCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("form.cancelled"))
		return nil
	}
	if err != nil {
		return err
	}
	return writeYAML(cmd.OutOrStdout(), details)
}

func readPrefill(path string) (*root.CardDetails, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prefill: %w", err)
	}
	var details root.CardDetails
	if err := yaml.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("parse prefill %s: %w", path, err)
	}
	return &details, nil
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		// version needs no config
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	s := v
	if c != "" && c != "dev" {
		s += " (" + c + ")"
	}
	if d != "" {
		s += " built: " + d
	}
	return s
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.Commit
	if resolvedCommit == "" {
		resolvedCommit = "dev"
	}
	resolvedDate := buildvars.Date

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our module as a dependency.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// If no version was discovered but a commit was provided via ldflags,
	// show that to aid support.
	if resolvedVersion == "dev" && buildvars.Commit != "" {
		resolvedVersion = buildvars.Commit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
