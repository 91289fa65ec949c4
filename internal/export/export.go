package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"wellchat/internal/intent"
	"wellchat/internal/report"
	"wellchat/internal/responder"
)

// JSON renders the report in its interchange form
func JSON(rep *report.Report) ([]byte, error) {
	return rep.Marshal()
}

// Markdown builds a standalone markdown report from the same
// formatting routines the chat uses
func Markdown(rep *report.Report) string {
	var b strings.Builder
	b.WriteString("# Well Analysis Report\n\n")

	b.WriteString(responder.Generate(intent.ShowParameters, rep, ""))
	b.WriteString("\n")
	b.WriteString(responder.Generate(intent.ShowNodalDetails, rep, ""))
	b.WriteString("\n")

	if rep.NodalAnalysis.Succeeded() {
		b.WriteString(responder.Generate(intent.OptimizationAdvice, rep, ""))
		b.WriteString("\n")
		b.WriteString(responder.Generate(intent.LimitationAnalysis, rep, ""))
		b.WriteString("\n\n")
	}

	if rep.Summary != "" {
		b.WriteString(responder.Generate(intent.ShowSummary, rep, ""))
		b.WriteString("\n")
	}

	return b.String()
}

// HTML converts the markdown report into a self-contained HTML page
func HTML(rep *report.Report) ([]byte, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(Markdown(rep)), &content); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}

	page := "<!doctype html><html><head><meta charset='utf-8'><title>Well Analysis Report</title>" +
		"<style>body{font-family:sans-serif;max-width:800px;margin:2rem auto;padding:0 1rem;color:#1f2937;}" +
		"h1,h2,h3{color:#111827;} li{margin:0.2rem 0;}</style>" +
		"</head><body>" + content.String() + "</body></html>"
	return []byte(page), nil
}

// Write serializes the report to path. Format is json, md, or html;
// empty format is inferred from the file extension.
func Write(rep *report.Report, path, format string) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = JSON(rep)
	case "md", "markdown":
		data = []byte(Markdown(rep))
	case "html":
		data, err = HTML(rep)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
