package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/internal/database"
	"github.com/sumanthj/resumeforge/internal/export"
)

var importCmd = &cobra.Command{
	Use:     "import <file.json>",
	Short:   "Import a resume from an exported JSON file",
	Args:    cobra.ExactArgs(1),
	Example: `  resumeforge import Ada_Lovelace_Resume.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		resume, err := export.FromJSON(data)
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(errorStyle.Render("Import failed: " + verr.Error()))
			return nil
		}
		if err != nil {
			return fmt.Errorf("import resume: %w", err)
		}

		if err := database.SaveResume(resume); err != nil {
			return fmt.Errorf("save resume: %w", err)
		}

		name := resume.ContactInfo.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("✓ Imported %s (ID: %s)\n", name, resume.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
