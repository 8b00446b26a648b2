package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ivco-ai/blogsync/internal/blog"
	"github.com/ivco-ai/blogsync/internal/payload"
	"github.com/spf13/cobra"
)

var (
	uploadDir    string
	uploadDryRun bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Publish every markdown article of the blog directory to the CMS",
	Long: `Converts every *.md file of the blog directory and creates a CMS post for each
article whose slug does not exist yet. The author, the category table and the
tags used by the articles are created first when missing.

Use --dry-run to print the post payloads without contacting the CMS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(!uploadDryRun); err != nil {
			return err
		}

		dir := uploadDir
		if dir == "" {
			dir = appConfig.BlogDir
		}

		sources, err := blog.LoadDir(dir)
		if err != nil {
			return err
		}

		converter, err := newConverter()
		if err != nil {
			return err
		}

		var store blog.Store
		if !uploadDryRun {
			store = payload.NewClient(appConfig, log)
		}

		publisher := blog.NewPublisher(store, converter, blog.Options{
			AuthorName:  appConfig.AuthorName,
			AuthorBio:   appConfig.AuthorBio,
			SourceAgent: appConfig.SourceAgent,
			DryRun:      uploadDryRun,
		}, log)

		res, err := publisher.Publish(cmd.Context(), sources)
		if err != nil {
			return fmt.Errorf("publishing: %w", err)
		}

		if uploadDryRun {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res.Posts); err != nil {
				return fmt.Errorf("encoding payloads: %w", err)
			}
		}

		log.WithField("dir", dir).Infof("upload complete: %d created, %d skipped, %d failed", res.Created, res.Skipped, res.Failed)
		if res.Failed > 0 {
			return fmt.Errorf("%d article(s) failed", res.Failed)
		}
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadDir, "dir", "", "blog directory (default from config, docs/blog)")
	uploadCmd.Flags().BoolVar(&uploadDryRun, "dry-run", false, "print post payloads without publishing")
	rootCmd.AddCommand(uploadCmd)
}
