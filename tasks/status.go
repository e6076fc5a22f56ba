package tasks

import (
	"fmt"
	"io"
	"webup/backcheck"
	"webup/backcheck/render"
)

// DisplayStatus prints a plain text summary of a report
func DisplayStatus(w io.Writer, report backcheck.RunReport) {
	fmt.Fprintln(w, render.Summary(report.AlertCount()))
	fmt.Fprintf(w, "threshold: %d hours\n", report.Threshold)

	for _, db := range append(append([]backcheck.EvaluatedDatabase{}, report.Alerts...), report.OK...) {
		fmt.Fprintln(w, "--------------------------------------------")
		fmt.Fprintln(w, "       name:", db.Name)
		fmt.Fprintln(w, "     status:", db.Status)
		fmt.Fprintln(w, "  last type:", db.LastBackupKind)
		fmt.Fprintln(w, "  hours ago:", db.HoursAgoLabel())
	}

	for _, name := range report.Skipped {
		fmt.Fprintln(w, "--------------------------------------------")
		fmt.Fprintln(w, "       name:", name)
		fmt.Fprintln(w, "     status: not evaluated")
	}
}
