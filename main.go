// blhxfy is a scenario name overlay. It rewrites character names and dialogue
// text in captured game scene payloads using name dictionaries.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/sakurairsora/BLHXFY/config"
	"github.com/sakurairsora/BLHXFY/i18n"
	"github.com/sakurairsora/BLHXFY/langmeta"
	"github.com/sakurairsora/BLHXFY/merge"
	"github.com/sakurairsora/BLHXFY/namedict"
	"github.com/sakurairsora/BLHXFY/scenario"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ---------------------------------------------------------------------------
// Logging
// ---------------------------------------------------------------------------

var (
	logLevel = new(slog.LevelVar)
	logger   = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.TimeOnly,
	}))
)

func logDebug(format string, args ...any) {
	logger.Debug(fmt.Sprintf(format, args...))
}

func logInfo(format string, args ...any) {
	logger.Info(fmt.Sprintf(format, args...))
}

func logWarning(format string, args ...any) {
	logger.Warn(fmt.Sprintf(format, args...))
}

func logError(format string, args ...any) {
	logger.Error(fmt.Sprintf(format, args...))
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	rootDir string
	verbose bool
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blhxfy",
		Short: i18n.T("Scenario name overlay for captured game payloads"),
		Long: i18n.T(`blhxfy rewrites character names and dialogue text in captured game
scenario responses, using name dictionaries with per-scenario variants.

Configuration is read from .blhxfy.yaml in the root directory, then from
BLHXFY_* environment variables, then from command-line flags.

Commands:
  apply     Translate a captured scene response body
  lookup    Resolve names against the dictionary
  check     Load and validate configuration and dictionaries
  version   Show version information`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().StringVar(&rootDir, "root", ".", i18n.T("Directory containing .blhxfy.yaml"))
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, i18n.T("Enable debug logging"))

	root.AddCommand(
		newApplyCmd(),
		newLookupCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logError("%v", err)
		stop()
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("Show version information"),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "blhxfy version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// Shared overlay settings
// ---------------------------------------------------------------------------

// overlayFlags are the flags that override .blhxfy.yaml for commands that
// build an overlay.
type overlayFlags struct {
	lang        string
	names       []string
	sourceNames []string
	overrides   string
}

func (f *overlayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.lang, "lang", "", i18n.T("Game display language (e.g. en, jp)"))
	cmd.Flags().StringSliceVar(&f.names, "names", nil, i18n.T("Name dictionary files for non-Japanese clients (repeatable, later wins)"))
	cmd.Flags().StringSliceVar(&f.sourceNames, "source-names", nil, i18n.T("Name dictionary files for the Japanese client (repeatable, later wins)"))
	cmd.Flags().StringVar(&f.overrides, "overrides", "", i18n.T("YAML file of text overrides keyed by scene id"))
}

// settings loads .blhxfy.yaml and the environment, then applies flags.
func (f *overlayFlags) settings() (*config.File, error) {
	cfg, err := config.LoadWithEnv(rootDir)
	if err != nil {
		return nil, err
	}
	cfg, err = cfg.Resolve(rootDir)
	if err != nil {
		return nil, err
	}

	if f.lang != "" {
		cfg.Lang = f.lang
	}
	if len(f.names) > 0 {
		cfg.Names.Foreign = f.names
	}
	if len(f.sourceNames) > 0 {
		cfg.Names.Source = f.sourceNames
	}
	if f.overrides != "" {
		cfg.Overrides = f.overrides
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if level, _ := cfg.Level(); !verbose {
		logLevel.Set(level)
	}
	return cfg, nil
}

// loadOverlay reads every dictionary and override file named by cfg.
func loadOverlay(cfg *config.File) (*scenario.Overlay, namedict.Set, error) {
	var names namedict.Set
	var err error

	if names.Foreign, err = merge.LoadFiles(cfg.Names.Foreign...); err != nil {
		return nil, names, err
	}
	if names.Source, err = merge.LoadFiles(cfg.Names.Source...); err != nil {
		return nil, names, err
	}
	logDebug("loaded %d foreign and %d source names", names.Foreign.Len(), names.Source.Len())

	var overrides scenario.TextOverrides
	if cfg.Overrides != "" {
		if overrides, err = scenario.LoadTextOverrides(cfg.Overrides); err != nil {
			return nil, names, err
		}
		logDebug("loaded text overrides for %d scenes", len(overrides))
	}

	return scenario.NewOverlay(names, overrides), names, nil
}

// ---------------------------------------------------------------------------
// apply
// ---------------------------------------------------------------------------

func newApplyCmd() *cobra.Command {
	var (
		flags   overlayFlags
		path    string
		inFile  string
		outFile string
		report  bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: i18n.T("Translate a captured scene response body"),
		Long: i18n.T(`Translate a captured scene response body.

The body must be a JSON list of scene entries or an object with a
"scene_list" field. The scenario is taken from --path, the request path
of the captured response; bodies for other paths are written unchanged.

Examples:
  # Translate a captured body for the English client
  blhxfy apply --path /rest/scenario/scenario/scene_evt180101_cp1 --in body.json

  # Read stdin, list names missing from the dictionary
  cat body.json | blhxfy apply --path "$REQ_PATH" --report`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings()
			if err != nil {
				return err
			}
			overlay, _, err := loadOverlay(cfg)
			if err != nil {
				return err
			}

			body, err := readInput(cmd.InOrStdin(), inFile)
			if err != nil {
				return err
			}

			out, rep := overlay.TransformJSON(cmd.Context(), body, path, cfg.Lang)
			if !rep.Applied() {
				logWarning("%s", i18n.T("no scenario in path %q, body passed through", path))
			} else {
				logDebug("scenario %s, %d untranslated names", rep.Scenario, len(rep.Untranslated))
			}

			if err := writeOutput(cmd.OutOrStdout(), outFile, out); err != nil {
				return err
			}

			if report {
				printUntranslated(cmd.ErrOrStderr(), rep.Untranslated)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&path, "path", "", i18n.T("Request path of the captured response (required)"))
	cmd.Flags().StringVar(&inFile, "in", "-", i18n.T("Input body file (- for stdin)"))
	cmd.Flags().StringVar(&outFile, "out", "-", i18n.T("Output file (- for stdout)"))
	cmd.Flags().BoolVar(&report, "report", false, i18n.T("List names missing from the dictionary"))
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func writeOutput(stdout io.Writer, name string, data []byte) error {
	if name == "" || name == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// printUntranslated writes each missing name once, sorted.
func printUntranslated(w io.Writer, names []string) {
	unique := slices.Clone(names)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	fmt.Fprintln(w, i18n.N("%d untranslated name", "%d untranslated names", len(unique), len(unique)))
	for _, name := range unique {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// ---------------------------------------------------------------------------
// lookup
// ---------------------------------------------------------------------------

func newLookupCmd() *cobra.Command {
	var (
		flags overlayFlags
		scene string
	)

	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: i18n.T("Resolve names against the dictionary"),
		Long: i18n.T(`Resolve names the way the overlay would inside a scenario.

Trailing number tags and voice-line suffixes are handled as in apply.

Examples:
  blhxfy lookup "Lyria" "Vyrn's Voice" --scenario scene_evt180101_cp1`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings()
			if err != nil {
				return err
			}
			_, names, err := loadOverlay(cfg)
			if err != nil {
				return err
			}

			dict := names.For(cfg.Lang)
			out := cmd.OutOrStdout()
			for _, name := range args {
				res := scenario.TranslateName(name, dict, scene)
				switch res.Outcome {
				case scenario.Translated:
					fmt.Fprintf(out, "%s\t%s\n", name, res.Text)
				case scenario.Missed:
					fmt.Fprintf(out, "%s\t(%s: %s)\n", name, res.Outcome, res.Missing)
				default:
					fmt.Fprintf(out, "%s\t(%s)\n", name, res.Outcome)
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&scene, "scenario", "", i18n.T("Scenario identifier, e.g. scene_evt180101_cp1"))

	return cmd
}

// ---------------------------------------------------------------------------
// check
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	var flags overlayFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: i18n.T("Load and validate configuration and dictionaries"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings()
			if err != nil {
				return err
			}
			_, names, err := loadOverlay(cfg)
			if err != nil {
				return err
			}

			meta := langmeta.Resolve(cfg.Lang)
			dict := "foreign"
			if langmeta.IsSource(cfg.Lang) {
				dict = "source"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%s) -> %s\n", i18n.T("Language:"), strings.TrimSpace(meta.Flag+" "+meta.Name), langmeta.Canonicalize(cfg.Lang), dict)
			fmt.Fprintf(out, "%s %d (%s)\n", i18n.T("Foreign names:"), names.Foreign.Len(), strings.Join(cfg.Names.Foreign, ", "))
			fmt.Fprintf(out, "%s %d (%s)\n", i18n.T("Source names:"), names.Source.Len(), strings.Join(cfg.Names.Source, ", "))
			if cfg.Overrides != "" {
				fmt.Fprintf(out, "%s %s\n", i18n.T("Text overrides:"), cfg.Overrides)
			}
			logInfo("%s", i18n.T("configuration OK"))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
