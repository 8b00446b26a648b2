package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var convertContentOnly bool

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a markdown article and print the result as JSON",
	Long: `Reads a markdown file with frontmatter and prints the converted article:
frontmatter fields, the Lexical document that becomes the post content, the
FAQ records and the estimated reading time.

Use --content-only to print only the Lexical document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(false); err != nil {
			return err
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		converter, err := newConverter()
		if err != nil {
			return err
		}

		article, err := converter.ParseArticle(string(content))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		var out any = article
		if convertContentOnly {
			out = article.Content
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convertContentOnly, "content-only", false, "print only the Lexical document")
	rootCmd.AddCommand(convertCmd)
}
