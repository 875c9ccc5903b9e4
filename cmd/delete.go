package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sumanthj/resumeforge/internal/database"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <resume-id>",
	Short: "Delete a resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Printf("Delete resume %s? [y/N] ", args[0])
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Aborted")
				return nil
			}
		}

		if err := database.DeleteResume(args[0]); err != nil {
			return fmt.Errorf("delete resume: %w", err)
		}
		fmt.Println("✓ Resume deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().Bool("force", false, "Delete without confirmation")
}
