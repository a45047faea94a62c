package main

import (
	"fmt"           // Report output
	"os"            // File access
	"path/filepath" // Extension detection

	"github.com/google/uuid" // Admin id flag
	"github.com/spf13/cobra" // CLI framework
)

var (
	importAdmin  string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Import approved members from a spreadsheet",
	Long: `Import approved members from the first sheet of a spreadsheet.
Rows without a phone number are skipped. Members already imported are not
counted as failures, and existing users with a matching phone are verified.`,
	Example: `
# Preview without writing
consolectl import members.xlsx --dry-run

# Import, attributing the audit entry to an admin
consolectl import members.csv --admin 7c1e0f9e-2d7a-4b8e-9f43-0c6a5d1f2b3a
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var admin uuid.UUID
		if importAdmin != "" {
			id, err := uuid.Parse(importAdmin)
			if err != nil {
				return fmt.Errorf("invalid --admin: %w", err)
			}
			admin = id
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		svc, closeFn, err := openServices()
		if err != nil {
			return err
		}
		defer closeFn()

		preview, err := svc.Importer.Preview(filepath.Base(args[0]), f) // Format follows the extension
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Loaded %d rows, %d with a phone number\n", preview.Loaded, len(preview.Members))
		if importDryRun {
			return nil // Nothing written
		}
		res, err := svc.Importer.Import(cmd.Context(), admin, preview.Members) // Same pipeline as the console
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Imported %d, failed %d\n", res.Success, res.Failed)
		for _, e := range res.Errors {
			fmt.Fprintln(out, "  "+e)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importAdmin, "admin", "", "admin user id recorded in the audit log")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and report without importing")
	rootCmd.AddCommand(importCmd)
}
