package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wellchat/internal/export"
	"wellchat/internal/report"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <report.json>",
	Short: "Render a saved report as json, markdown, or html",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		rep, err := report.Parse(data)
		if err != nil {
			return err
		}

		if exportOut == "" {
			// No output file: print markdown to stdout
			if exportFormat != "" && exportFormat != "md" && exportFormat != "markdown" {
				return fmt.Errorf("--output is required for format %q", exportFormat)
			}
			fmt.Print(export.Markdown(rep))
			return nil
		}

		return export.Write(rep, exportOut, exportFormat)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "json, md, or html (default: from extension)")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file path")
	rootCmd.AddCommand(exportCmd)
}
