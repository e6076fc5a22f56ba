package backcheck

import (
	"time"
)

// RunReport holds the evaluated databases of a run, split by status
type RunReport struct {
	Alerts      []EvaluatedDatabase
	OK          []EvaluatedDatabase
	Skipped     []string
	Threshold   int
	GeneratedAt time.Time
}

// NewRunReport splits the evaluated databases into their status buckets, keeping their order
func NewRunReport(databases []EvaluatedDatabase, skipped []string, threshold int, now time.Time) RunReport {
	report := RunReport{
		Alerts:      []EvaluatedDatabase{},
		OK:          []EvaluatedDatabase{},
		Skipped:     skipped,
		Threshold:   threshold,
		GeneratedAt: now,
	}

	for _, db := range databases {
		if db.Status == StatusAlert {
			report.Alerts = append(report.Alerts, db)
		} else {
			report.OK = append(report.OK, db)
		}
	}

	return report
}

// AlertCount returns the number of databases in alert
func (r RunReport) AlertCount() int {
	return len(r.Alerts)
}

// OKCount returns the number of databases within the threshold
func (r RunReport) OKCount() int {
	return len(r.OK)
}

// HasAlerts reports whether at least one database is in alert
func (r RunReport) HasAlerts() bool {
	return len(r.Alerts) > 0
}
