package tinge

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tinge/pkg/escape"
)

//go:embed docs/markup.md
var markupDoc string

//go:embed docs/sheets.md
var sheetsDoc string

var docTopics = map[string]string{
	"markup": markupDoc,
	"sheets": sheetsDoc,
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     MsgDocsShort,
		Long:      MsgDocsShort + ".\n\nTopics: markup, sheets. Defaults to markup.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"markup", "sheets"},
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := "markup"
			if len(args) == 1 {
				topic = args[0]
			}
			content, ok := docTopics[topic]
			if !ok {
				return fmt.Errorf("unknown topic: %s", topic)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(content))
			return nil
		},
	}
}

// renderMarkdown converts markdown to styled terminal output, falling
// back to the raw content when the renderer cannot be built or fails.
func renderMarkdown(content string) string {
	if !escape.Enabled() {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
