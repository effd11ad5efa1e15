package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/zjrosen/vedit/internal/keys"
)

const keysWrapWidth = 80

var keysPlain bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc := keyReferenceMarkdown(keys.Reference())
		if keysPlain {
			_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
			return err
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(keysWrapWidth),
		)
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
		out, err := renderer.Render(doc)
		if err != nil {
			return fmt.Errorf("rendering key reference: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	keysCmd.Flags().BoolVar(&keysPlain, "plain", false, "print markdown without styling")
	rootCmd.AddCommand(keysCmd)
}

// keyReferenceMarkdown renders one table per section.
func keyReferenceMarkdown(sections []keys.Section) string {
	var b strings.Builder
	b.WriteString("# vedit key bindings\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n| --- | --- |\n", s.Title)
		for _, binding := range s.Bindings {
			help := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", help.Key, strings.ReplaceAll(help.Desc, "|", `\|`))
		}
	}
	return b.String()
}
