package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"support-widget/cmd/widget/tui"
	"support-widget/internal/client"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		endpoint string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "widget",
		Short: "Terminal support chat widget",
		Long:  "Interactive support chat: log in with a name and user ID, then exchange messages with the support service.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintln(os.Stderr, "Warning: .env file not found, relying on flags and environment")
			}
			if !cmd.Flags().Changed("endpoint") {
				if env := os.Getenv("SUPPORT_ENDPOINT"); env != "" {
					endpoint = env
				}
			}

			model := tui.NewModel(client.New(endpoint), timeout)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080/api", "base URL of the support API")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout")
	return cmd
}
