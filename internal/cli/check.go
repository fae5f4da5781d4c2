package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/indicate/internal/config"
	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/rileyhilliard/indicate/internal/logger"
	"github.com/rileyhilliard/indicate/internal/state"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// checkCmd replays a bootstrap file and prints the resulting state.
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Replay a bootstrap file and print the resulting state",
	Long: `Replay a bootstrap file the way startup does and print the display state
it produces as YAML. Without a file the usual bootstrap discovery applies:
--bootstrap, then $INDICATE_CONFIG, then ~/.config/indicate/config.rc.
Use - to read from stdin.

The first malformed line is reported with its line number.

Examples:
  indicate check
  indicate check ~/.config/indicate/config.rc
  printf '\\color=ff0000\nhello\n' | indicate check -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := config.LoadOrDefault(settingsFlag)
		if err != nil {
			return err
		}

		file := ""
		if len(args) == 1 {
			file = args[0]
		}
		return runCheck(cmd.OutOrStdout(), cmd.InOrStdin(), file, settings)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck replays file (or the discovered bootstrap) and writes the state.
func runCheck(w io.Writer, stdin io.Reader, file string, settings *config.Settings) error {
	var (
		r      io.Reader
		source string
	)

	switch file {
	case "-":
		r, source = stdin, "stdin"
	case "":
		rc, path, err := config.OpenBootstrap(settings.Bootstrap, logger.Default())
		if err != nil {
			return err
		}
		if rc != nil {
			defer rc.Close()
			r, source = rc, path
		}
	default:
		f, err := os.Open(config.ExpandTilde(file))
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot open "+file,
				"Check the path is correct")
		}
		defer f.Close()
		r, source = f, file
	}

	s, err := state.Initialize(r, source)
	if err != nil {
		return classify(err)
	}
	s.RightAligned = settings.RightAligned

	if source == "" {
		fmt.Fprintln(w, "# no bootstrap file; defaults only")
	} else {
		fmt.Fprintf(w, "# %s\n", source)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "Failed to write state")
	}
	return enc.Close()
}
