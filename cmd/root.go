package cmd

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cinepass-cli/config"
	"cinepass-cli/service"
	"cinepass-cli/store"
	"cinepass-cli/tui"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "cinepass",
	Short: "CinePass CLI",
	Long:  `Browse movies, pick your seats and buy cinema tickets from the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		if _, err := tea.NewProgram(tui.New(client), tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		out := fmt.Sprintf("cinepass %s", version)
		if commit != "none" && commit != "" {
			out += fmt.Sprintf(" (%s)", commit)
		}
		fmt.Println(out)
	},
}

// newClient builds the API client from environment configuration and wires
// the stored session into it. The unauthorized hook clears a rejected
// session so the next run starts at the login screen.
func newClient() *service.Client {
	cfg := config.Load()
	client := service.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.BaseURL)
	client.SetMaxAttempts(cfg.MaxAttempts)
	client.SetUnauthorizedHook(func() {
		_ = store.ClearSession()
	})
	if session, err := store.LoadSession(); err == nil && session != nil {
		token := session.Token
		client.SetTokenSource(func() string { return token })
	}
	return client
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func Execute() {
	rootCmd.AddCommand(versionCmd, loginCmd, registerCmd, logoutCmd, plansCmd, orderCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
