package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/database"
	"github.com/sumanthj/resumeforge/internal/strength"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all resumes",
	RunE: func(cmd *cobra.Command, args []string) error {
		resumes, err := database.GetAllResumes()
		if err != nil {
			return fmt.Errorf("fetch resumes: %w", err)
		}

		if len(resumes) == 0 {
			fmt.Println("No resumes found. Create one with 'resumeforge new'")
			return nil
		}

		fmt.Println(titleStyle.Render("Your Resumes"))
		for i, resume := range resumes {
			name := resume.ContactInfo.Name
			if name == "" {
				name = "(unnamed)"
			}
			report := strength.Evaluate(resume)
			fmt.Printf("\n%d. %s\n", i+1, name)
			fmt.Printf("   %s %s\n", labelStyle.Render("ID:"), resume.ID)
			if resume.ContactInfo.Email != "" {
				fmt.Printf("   %s %s\n", labelStyle.Render("Email:"), resume.ContactInfo.Email)
			}
			fmt.Printf("   %s %s\n", labelStyle.Render("Updated:"), resume.UpdatedAt)
			fmt.Printf("   %s %d%%\n", labelStyle.Render("Strength:"), report.Score)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
