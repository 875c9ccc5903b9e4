package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/database"
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search resumes by contact name or email",
	Args:    cobra.ExactArgs(1),
	Example: `  resumeforge search ada`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resumes, err := database.SearchResumes(args[0])
		if err != nil {
			return fmt.Errorf("search resumes: %w", err)
		}

		if len(resumes) == 0 {
			fmt.Printf("No resumes matching %q\n", args[0])
			return nil
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Resumes matching %q", args[0])))
		for i, resume := range resumes {
			name := resume.ContactInfo.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Printf("%d. %s  %s\n", i+1, name, resume.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
