package cmd

import (
	"fmt"
	"os"

	"github.com/ivco-ai/blogsync/internal/markdown"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a markdown article body to HTML",
	Long:  `Strips the frontmatter from a markdown article and renders the body to HTML on stdout, for comparing against the page the CMS renders from the converted content.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		_, body, err := markdown.SplitFrontmatter(string(content))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		html, err := markdown.RenderHTML(body)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
