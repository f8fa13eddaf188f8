package cmd

import (
	"fmt"
	"os"

	"github.com/hamish-miller/anki/internal/genhooks"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the hooks file is up to date",
	Long: `Verify that the generated region of the hooks file matches the current
hook declarations, without modifying anything.

Intended for CI: exits non-zero and prints a diff if 'genhooks generate'
needs to be rerun.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&hooksFile, "hooks-file", "internal/anki/hooks.go", "Hooks file to check")
	checkCmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML file with extra hook declarations")
}

func runCheck(cmd *cobra.Command, args []string) error {
	decls, err := loadDeclarations()
	if err != nil {
		return err
	}

	diff, err := genhooks.CheckFile(hooksFile, decls)
	if err != nil {
		return err
	}
	if diff != "" {
		fmt.Fprintf(os.Stderr, "%s is stale, rerun 'genhooks generate' (-want +got):\n%s", hooksFile, diff)
		os.Exit(1)
	}

	fmt.Printf("%s is up to date\n", hooksFile)
	return nil
}
