package cli

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/rileyhilliard/indicate/internal/protocol"
	"github.com/rileyhilliard/indicate/internal/ui"
	"github.com/spf13/cobra"
)

var (
	settingsFlag string
	overlayFlags OverlayFlags
)

// rootCmd shows the overlay and follows stdin.
var rootCmd = &cobra.Command{
	Use:   "indicate [text]",
	Short: "Show a status overlay driven by lines on stdin",
	Long: `Show a small always-on-top status box with a label and a progress bar.

Each line on stdin updates the overlay. Plain lines replace the text; lines
starting with a backslash set one attribute:

  \font=Sans Bold 12
  \color=ff8000        (rrggbb or rrggbbaa)
  \progress=determinate  (indeterminate, determinate, none)
  \indeterminate_speed=2
  \progress_current=40
  \progress_max=100

The overlay waits for the first non-empty text before it appears, and exits
with an error when stdin closes.

Examples:
  make 2>&1 | tail -n1 -f | indicate
  indicate --progress determinate --max 10 "Copying" < updates
  INDICATE_CONFIG=~/status.rc indicate`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runOverlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "settings file (default ~/.config/indicate/settings.yaml)")
	AddOverlayFlags(rootCmd, &overlayFlags)

	_ = rootCmd.RegisterFlagCompletionFunc("progress", completeProgress)
}

// completeProgress offers the protocol's progress mode names.
func completeProgress(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	kinds := []protocol.ProgressKind{protocol.ProgressIndeterminate, protocol.ProgressDeterminate, protocol.ProgressNone}
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the root command and exits with a status matching the
// error's code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}

// printError writes err in the three-part layout, colored when w is a
// terminal.
func printError(w io.Writer, err error) {
	p := ui.NewErrorPrinter(w, lipgloss.NewRenderer(w))

	var indErr *errors.Error
	if !stderrors.As(err, &indErr) {
		p.Print(err.Error(), "", "")
		return
	}

	cause := ""
	if indErr.Cause != nil {
		cause = indErr.Cause.Error()
	}
	p.Print(indErr.Message, cause, indErr.Suggestion)
}
