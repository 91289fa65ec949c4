package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wellchat/internal/intent"
	"wellchat/internal/report"
	"wellchat/internal/responder"
)

var askReportPath string

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer one question without the interactive UI",
	Long:  "Classifies the question and prints the assistant's markdown reply.\nPass --report to answer against a saved report JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		utterance := strings.Join(args, " ")

		var rep *report.Report
		if askReportPath != "" {
			data, err := os.ReadFile(askReportPath)
			if err != nil {
				return err
			}
			rep, err = report.Parse(data)
			if err != nil {
				return err
			}
		}

		it := intent.Classify(utterance, rep != nil)
		fmt.Println(responder.Generate(it, rep, utterance))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askReportPath, "report", "r", "", "path to a saved report JSON")
	rootCmd.AddCommand(askCmd)
}
