package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/internal/database"
	"github.com/sumanthj/resumeforge/internal/export"
	"github.com/sumanthj/resumeforge/pkg/models"
)

var exportCmd = &cobra.Command{
	Use:   "export <resume-id>",
	Short: "Export a resume to a file",
	Long:  "Export a resume to PDF, Word, Markdown or JSON",
	Args:  cobra.ExactArgs(1),
	Example: `  resumeforge export 4f2c... --format pdf
  resumeforge export 4f2c... --format md --out ./out/resume.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		resume, err := database.GetResume(args[0])
		if errors.Is(err, app.ErrNotFound) {
			fmt.Println("Resume not found. See 'resumeforge list' for available resumes.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load resume: %w", err)
		}

		data, err := exportResume(cmd, resume, format)
		if err != nil {
			return err
		}

		if out == "" {
			application := app.GetAppFromContext(cmd.Context())
			dir := ""
			if application != nil && application.Config != nil {
				dir = application.Config.ExportDir
			}
			out = filepath.Join(dir, export.Filename(resume, format))
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}

		fmt.Printf("✓ Exported %s (%d bytes)\n", out, len(data))
		return nil
	},
}

// exportResume dispatches to the serializer for the requested format. All
// serializers consume an immutable snapshot loaded from the gateway.
func exportResume(cmd *cobra.Command, resume *models.ResumeData, format string) ([]byte, error) {
	switch format {
	case export.FormatJSON:
		return export.ToJSON(resume)
	case export.FormatMarkdown:
		return export.ToMarkdown(resume)
	case export.FormatWord:
		return export.ToWord(resume)
	case export.FormatPDF:
		chromePath := ""
		if application := app.GetAppFromContext(cmd.Context()); application != nil && application.Config != nil {
			chromePath = application.Config.ChromePath
		}
		return export.ToPDF(cmd.Context(), resume, export.PDFOptions{
			ChromePath: chromePath,
			Filename:   export.Filename(resume, export.FormatPDF),
		})
	default:
		return nil, fmt.Errorf("%w: unknown format %q (expected json, md, docx or pdf)", app.ErrInvalidArgument, format)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("format", export.FormatPDF, "Export format: json, md, docx, pdf")
	exportCmd.Flags().String("out", "", "Output path (defaults to a name derived from the contact name)")
}
