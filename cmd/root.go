package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/internal/config"
	"github.com/sumanthj/resumeforge/internal/database"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "Build, preview and export resumes from your terminal",
	Long: `Resumeforge is a local resume builder. It keeps structured resume content
(contact info, experience, projects, skills, education, awards) in an
embedded database, previews it in the terminal, and exports it to
PDF, Word, Markdown and JSON.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		if err := database.Initialize(config.DataDir()); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	database.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
