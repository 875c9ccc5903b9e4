package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/database"
	"github.com/sumanthj/resumeforge/internal/store"
	"github.com/sumanthj/resumeforge/pkg/models"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new resume",
	Long:  "Create a new empty resume, or a sample resume to explore the tool",
	Example: `  resumeforge new
  resumeforge new --sample
  resumeforge new --name "Ada Lovelace"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, _ := cmd.Flags().GetBool("sample")
		name, _ := cmd.Flags().GetString("name")

		st := store.New()
		if sample {
			st.SetResume(models.NewSampleResume(time.Now()))
		} else {
			st.CreateNewResume()
		}
		if name != "" {
			st.UpdateContactInfo(models.ContactInfoPatch{Name: &name})
		}

		resume := st.Snapshot()
		if err := database.SaveResume(resume); err != nil {
			return fmt.Errorf("save resume: %w", err)
		}

		fmt.Printf("✓ Resume created (ID: %s)\n", resume.ID)
		fmt.Printf("  Edit it with 'resumeforge edit %s'\n", resume.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().Bool("sample", false, "Populate the resume with sample content")
	newCmd.Flags().String("name", "", "Contact name for the new resume")
}
