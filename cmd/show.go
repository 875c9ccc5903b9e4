package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/internal/database"
	"github.com/sumanthj/resumeforge/internal/display"
	"github.com/sumanthj/resumeforge/internal/strength"
)

var showCmd = &cobra.Command{
	Use:   "show <resume-id>",
	Short: "Preview a resume in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, err := database.GetResume(args[0])
		if errors.Is(err, app.ErrNotFound) {
			fmt.Println("Resume not found. See 'resumeforge list' for available resumes.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load resume: %w", err)
		}

		fmt.Print(display.RenderTerminal(resume))

		if withStrength, _ := cmd.Flags().GetBool("strength"); withStrength {
			report := strength.Evaluate(resume)
			fmt.Println(titleStyle.Render("Resume Strength"))
			fmt.Printf("%s %d%%\n", labelStyle.Render("Profile Completeness:"), report.Score)
			for _, check := range report.Checks {
				marker := "✓"
				if check.Status != strength.StatusSuccess {
					marker = "✗"
				}
				fmt.Printf("  %s %s\n", marker, check.Label)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("strength", false, "Show the resume strength checklist")
}
