package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pyforge/pyforge/internal/guide"
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Read the built-in guides",
	Long: `Read the built-in guides about the generated projects.

Run without a topic to list available guides.

Examples:
  pyforge guide layout
  pyforge guide ci --plain | less`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: guide.Topics(),
	RunE:      runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)

	guideCmd.Flags().Bool("plain", false, "Print raw markdown without terminal styling")
}

func runGuide(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		_, _ = fmt.Fprintln(out, cliPrimary.Bold(true).Render("Available guides"))
		for _, topic := range guide.Topics() {
			_, _ = fmt.Fprintf(out, "  %s\n", topic)
		}
		_, _ = fmt.Fprintln(out, cliMuted.Render("pyforge guide <topic>"))
		return nil
	}

	// Styled output needs a terminal; pipes get raw markdown.
	plain := getBoolFlag(cmd, "plain") || !isatty.IsTerminal(os.Stdout.Fd())

	rendered, err := guide.Render(args[0], plain)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, strings.TrimRight(rendered, "\n"))
	return nil
}
