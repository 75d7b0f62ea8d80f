package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pyforge/pyforge/internal/cli/wizard"
	"github.com/pyforge/pyforge/internal/config"
	"github.com/pyforge/pyforge/internal/core/scaffold"
	"github.com/pyforge/pyforge/internal/ui"
	"github.com/pyforge/pyforge/pkg/models"
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Scaffold a new Python project",
	Long: `Scaffold a new Python project repository.

Usage patterns:
  pyforge new my-app           Create ./my-app/ and scaffold inside
  pyforge new                  Run the interactive wizard
  pyforge new --config f.yaml  Scaffold from a saved answer file

Without flags or an answer file, an interactive wizard collects the
configuration. In a non-TTY environment (CI), pass the answers via
flags or --config instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("root", "", "Target directory (default: ./<project-name>)")
	newCmd.Flags().String("config", "", "Path to a pyforge.yaml answer file")
	newCmd.Flags().String("kind", "", "Project kind: library, cli, web, data-science, api")
	newCmd.Flags().String("python", "", "Minimum Python version (e.g. 3.12)")
	newCmd.Flags().String("framework", "", "Web framework: none, django, flask, fastapi")
	newCmd.Flags().Int("team-size", 0, "Team size (2+ adds CODEOWNERS and CONTRIBUTING.md)")
	newCmd.Flags().String("deploy", "", "Deployment target: none, docker, cloud, pypi, k8s")
	newCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags, answer file, and defaults")
	newCmd.Flags().Bool("no-answer-file", false, "Do not write pyforge.yaml into the project")
	newCmd.Flags().Bool("verbose", false, "Log scaffolding steps to stderr")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getIntFlag retrieves an int flag value from the command.
func getIntFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0
	}
	return val
}

// resolveConfig builds the project configuration from, in increasing
// precedence: defaults, the answer file (--config), flags, and the
// positional project name.
func resolveConfig(cmd *cobra.Command, args []string) (models.ProjectConfig, error) {
	cfg := config.Default()

	if path := getStringFlag(cmd, "config"); path != "" {
		loaded, err := config.LoadAnswerFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if v := getStringFlag(cmd, "kind"); v != "" {
		cfg.Kind = models.ProjectKind(v)
	}
	if v := getStringFlag(cmd, "python"); v != "" {
		cfg.PythonVersion = v
	}
	if v := getStringFlag(cmd, "framework"); v != "" {
		cfg.Framework = models.Framework(v)
	}
	if v := getIntFlag(cmd, "team-size"); v != 0 {
		cfg.TeamSize = v
	}
	if v := getStringFlag(cmd, "deploy"); v != "" {
		cfg.DeployTarget = models.DeployTarget(v)
	}
	if len(args) > 0 {
		cfg.Name = filepath.Base(args[0])
	}

	return cfg, nil
}

// shouldRunWizard reports whether the interactive wizard should collect
// the configuration: only on a TTY, and only when neither a name nor an
// answer file pinned the config down.
func shouldRunWizard(cmd *cobra.Command, cfg models.ProjectConfig) bool {
	if getBoolFlag(cmd, "non-interactive") {
		return false
	}
	if cfg.Name != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd())
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if shouldRunWizard(cmd, cfg) {
		result, err := wizard.RunWithDefaults(mustGetwd())
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Scaffolding cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		cfg, err = result.Config()
		if err != nil {
			return err
		}
	}

	if cfg.Name == "" {
		return errors.New("project name required: pass it as an argument, via --config, or run interactively")
	}

	targetRoot := getStringFlag(cmd, "root")
	if targetRoot == "" && len(args) > 0 {
		targetRoot = args[0]
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	if getBoolFlag(cmd, "verbose") {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	theme := ui.NewTheme()
	headless := ui.NewHeadlessManager()
	progress := ui.NewProgress(theme, headless)

	var bar ui.ProgressBar
	scaffolder, err := scaffold.New(
		scaffold.WithLogger(logger),
		scaffold.WithProgress(func(done, total int, path string) {
			if bar == nil {
				bar = progress.Start("writing files", total)
			}
			bar.SetTitle(path)
			bar.Increment(1)
		}),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := scaffolder.Run(ctx, scaffold.Options{
		Config:         cfg,
		TargetRoot:     targetRoot,
		SkipAnswerFile: getBoolFlag(cmd, "no-answer-file"),
	})
	if bar != nil {
		bar.Done()
	}
	if err != nil {
		return fmt.Errorf("scaffolding failed: %w", err)
	}

	printNewResult(cmd, cfg, result)

	if !result.Emission.Ok() {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d file(s) could not be written", len(result.Emission.Failed))
	}
	return nil
}

// printNewResult renders the outcome card for the new command.
func printNewResult(cmd *cobra.Command, cfg models.ProjectConfig, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	em := result.Emission

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Kind", string(cfg.Kind)},
			{"Python", cfg.PythonVersion},
			{"Location", result.TargetRoot},
			{"Files", fmt.Sprintf("%d created, %d skipped", len(em.Created), len(em.Skipped))},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}

	_, _ = fmt.Fprintln(out)
	if em.Ok() {
		_, _ = fmt.Fprintln(out, renderSuccessCard(fmt.Sprintf("Project %s scaffolded", cfg.Name), details...))
		return
	}

	// Deterministic failure listing.
	failed := make([]string, 0, len(em.Failed))
	for path := range em.Failed {
		failed = append(failed, path)
	}
	sort.Strings(failed)
	for _, path := range failed {
		details = append(details, cliError.Render(fmt.Sprintf("failed %s: %s", path, em.Failed[path])))
	}
	_, _ = fmt.Fprintln(out, renderErrorCard(fmt.Sprintf("Project %s scaffolded with errors", cfg.Name), details...))
}

func mustGetwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
