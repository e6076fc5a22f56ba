package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"webup/backcheck"

	"github.com/Masterminds/sprig/v3"
)

var (
	reportTemplate *template.Template

	//go:embed templates/report.html
	reportTemplateRaw string
)

func init() {
	funcMap := sprig.FuncMap()
	funcMap["summary"] = Summary

	reportTemplate = template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplateRaw))
}

// Summary returns the one-line count of alerts
func Summary(alerts int) string {
	if alerts == 1 {
		return "1 database backup alert today"
	}
	return fmt.Sprintf("%d database backup alerts today", alerts)
}

// Render builds the self-contained HTML document of a report
func Render(report backcheck.RunReport) (string, error) {
	var b bytes.Buffer
	if err := reportTemplate.Execute(&b, report); err != nil {
		return "", fmt.Errorf("unable to render report: %w", err)
	}
	return b.String(), nil
}
