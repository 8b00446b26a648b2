package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/ivco-ai/blogsync/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure Payload CMS connection settings",
	Long:  `Interactively set up the CMS URL, admin email, and admin password. Settings are saved to ~/.blogsync.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		// Effective config (file, env, defaults) supplies the prompt defaults.
		existing, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// URL
		defaultURL := existing.URL
		if defaultURL != "" {
			fmt.Printf("CMS URL [%s]: ", defaultURL)
		} else {
			fmt.Print("CMS URL (e.g., https://ivco.ai): ")
		}
		url, _ := reader.ReadString('\n')
		url = strings.TrimSpace(url)
		if url == "" {
			url = defaultURL
		}

		// Email
		defaultEmail := existing.Email
		if defaultEmail != "" {
			fmt.Printf("Admin email [%s]: ", defaultEmail)
		} else {
			fmt.Print("Admin email: ")
		}
		email, _ := reader.ReadString('\n')
		email = strings.TrimSpace(email)
		if email == "" {
			email = defaultEmail
		}

		// Password (masked input)
		fmt.Print("Admin password (input hidden): ")
		passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println() // newline after hidden input
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password := strings.TrimSpace(string(passwordBytes))
		if password == "" {
			password = existing.Password
		}

		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}

		if _, err := config.UpdateCredentials(path, url, email, password); err != nil {
			return err
		}

		fmt.Printf("Configuration saved to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
