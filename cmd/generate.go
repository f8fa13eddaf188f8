package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hamish-miller/anki/internal/genhooks"
	"github.com/spf13/cobra"
)

var (
	hooksFile    string
	manifestPath string
	generateCmd  = &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the hooks file",
		Long: `Regenerate the code between the @@AUTOGEN@@ markers of the hooks file.

The region is rebuilt from the built-in hook declarations, plus any extra
declarations from --manifest. Everything outside the markers is untouched.`,
		RunE: runGenerate,
	}
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&hooksFile, "hooks-file", "internal/anki/hooks.go", "Hooks file to update")
	generateCmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML file with extra hook declarations")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	decls, err := loadDeclarations()
	if err != nil {
		return err
	}

	if err := genhooks.UpdateFile(hooksFile, decls); err != nil {
		return err
	}

	fmt.Printf("Updated %s\n", hooksFile)
	return nil
}

func loadDeclarations() ([]genhooks.Hook, error) {
	decls := genhooks.BuiltinHooks()
	if manifestPath == "" {
		return decls, nil
	}

	extra, err := genhooks.LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded manifest", "path", manifestPath, "hooks", len(extra))
	return append(decls, extra...), nil
}
