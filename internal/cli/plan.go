package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyforge/pyforge/internal/core/scaffold"
)

var planCmd = &cobra.Command{
	Use:   "plan [project-name]",
	Short: "Show what a scaffold run would create",
	Long: `Show the file tree a scaffold run would create, without writing
anything. Accepts the same configuration flags as "pyforge new".

Examples:
  pyforge plan my-app --kind api --framework fastapi --deploy k8s
  pyforge plan --config pyforge.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().String("config", "", "Path to a pyforge.yaml answer file")
	planCmd.Flags().String("kind", "", "Project kind: library, cli, web, data-science, api")
	planCmd.Flags().String("python", "", "Minimum Python version (e.g. 3.12)")
	planCmd.Flags().String("framework", "", "Web framework: none, django, flask, fastapi")
	planCmd.Flags().Int("team-size", 0, "Team size (2+ adds CODEOWNERS and CONTRIBUTING.md)")
	planCmd.Flags().String("deploy", "", "Deployment target: none, docker, cloud, pypi, k8s")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Name == "" {
		return errors.New("project name required: pass it as an argument or via --config")
	}

	scaffolder, err := scaffold.New()
	if err != nil {
		return err
	}

	paths, err := scaffolder.Plan(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, cliPrimary.Bold(true).Render(fmt.Sprintf("%s/", cfg.Name)))
	for _, path := range paths {
		_, _ = fmt.Fprintf(out, "  %s\n", path)
	}
	_, _ = fmt.Fprintln(out, cliMuted.Render(fmt.Sprintf("%d files", len(paths))))

	return nil
}
