package tinge

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tinge/internal/version"
	"github.com/arthur-debert/tinge/pkg/escape"
	"github.com/arthur-debert/tinge/pkg/logging"
	"github.com/arthur-debert/tinge/pkg/markup"
	"github.com/arthur-debert/tinge/pkg/styles"
	"github.com/arthur-debert/tinge/pkg/swatch"
	"github.com/arthur-debert/tinge/pkg/term"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		colorMode string
	)

	rootCmd := &cobra.Command{
		Use:     "tinge",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			applyColorMode(colorMode, cmd.OutOrStdout())
			loadDefaultSheet()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", MsgFlagColor)

	rootCmd.AddCommand(newStylesCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// applyColorMode resolves the --color flag into the escape switch.
// Auto mode only checks terminal capabilities when output really is
// the process stdout; command output redirected elsewhere (tests,
// pipes set up by cobra) stays plain.
func applyColorMode(mode string, out io.Writer) {
	switch strings.ToLower(mode) {
	case "always":
		escape.SetEnabled(true)
	case "never":
		escape.SetEnabled(false)
	default:
		file, ok := out.(*os.File)
		if !ok {
			file = os.Stdout
		}
		escape.SetEnabled(term.StylingSupported(file))
	}
}

// loadDefaultSheet installs the user's style sheet if one exists. A
// malformed sheet is reported and skipped, never fatal.
func loadDefaultSheet() {
	sheet, err := styles.LoadDefault()
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring style sheet")
		return
	}
	styles.Apply(sheet)
}

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: MsgStylesShort,
		Long:  MsgStylesLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			var renderer swatch.Renderer
			if escape.Enabled() {
				renderer = swatch.NewTerminalRenderer()
			} else {
				renderer = swatch.NewPlainRenderer()
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderStyleList(markup.Styles()))
		},
	}
}

func newRenderCmd() *cobra.Command {
	var useTags bool

	renderCmd := &cobra.Command{
		Use:   "render [items...]",
		Short: MsgRenderShort,
		Long:  MsgRenderLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := renderItems(cmd, args, useTags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), markup.Compose(items...))
			return nil
		},
	}

	renderCmd.Flags().BoolVar(&useTags, "tags", false, MsgFlagTags)
	return renderCmd
}

func renderItems(cmd *cobra.Command, args []string, useTags bool) ([]markup.Item, error) {
	if useTags {
		input := strings.Join(args, " ")
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			input = strings.TrimRight(string(data), "\n")
		}
		return markup.Parse(input), nil
	}
	return itemsFromArgs(args), nil
}

// itemsFromArgs builds markup items from loose argv tokens. "[" and
// "]" open and close nested groups; unbalanced brackets degrade
// rather than error: a stray "]" is text, unclosed groups close at the
// end of the arguments.
func itemsFromArgs(args []string) []markup.Item {
	var stack [][]any
	current := []any{}

	for _, arg := range args {
		switch arg {
		case "[":
			stack = append(stack, current)
			current = []any{}
		case "]":
			if len(stack) == 0 {
				current = append(current, arg)
				continue
			}
			parent := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			current = append(parent, current)
		default:
			current = append(current, arg)
		}
	}

	for len(stack) > 0 {
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		current = append(parent, current)
	}

	return markup.From(current...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tinge version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
