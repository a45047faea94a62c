package main

import (
	"encoding/json" // JSON encoding
	"fmt"           // Output
	"io"            // Output writer
	"os"            // File creation
	"time"          // Filename date

	"community_admin/internal/service" // Backup model
	"community_admin/internal/utils"   // Dated filenames

	"github.com/spf13/cobra" // CLI framework
	"gopkg.in/yaml.v3"       // YAML encoding
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup of the console tables",
	Example: `
# database-backup-YYYY-MM-DD.json in the current directory
consolectl export

# YAML to stdout
consolectl export --format yaml --out -
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "json" && exportFormat != "yaml" {
			return fmt.Errorf("unsupported format %q, use json or yaml", exportFormat)
		}
		svc, closeFn, err := openServices()
		if err != nil {
			return err
		}
		defer closeFn()
		backup := svc.Exporter.Export(cmd.Context()) // Unreadable tables are omitted

		path := exportOut
		if path == "" {
			path = utils.DatedFilename("database-backup", exportFormat, time.Now())
		}
		var w io.Writer = cmd.OutOrStdout()
		if path != "-" { // "-" means stdout
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if err := writeBackup(w, backup, exportFormat); err != nil {
			return err
		}
		if path != "-" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Wrote", path)
		}
		return nil
	},
}

// writeBackup encodes b as indented JSON or as YAML with the same keys
func writeBackup(w io.Writer, b *service.Backup, format string) error {
	raw, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		_, err = w.Write(append(raw, '\n'))
		return err
	}
	var doc map[string]any // Keeps the JSON keys in YAML
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, - for stdout")
	rootCmd.AddCommand(exportCmd)
}
