package backcheck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRunReport(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	databases := []EvaluatedDatabase{
		{Name: "DB01", Status: StatusOK},
		{Name: "DB02", Status: StatusAlert},
		{Name: "DB03", Status: StatusOK},
		{Name: "DB04", Status: StatusAlert},
	}

	report := NewRunReport(databases, nil, 24, now)

	assert.Equal(t, 2, report.AlertCount())
	assert.Equal(t, 2, report.OKCount())
	assert.True(t, report.HasAlerts())
	assert.Equal(t, "DB02", report.Alerts[0].Name)
	assert.Equal(t, "DB04", report.Alerts[1].Name)
	assert.Equal(t, "DB01", report.OK[0].Name)
	assert.Equal(t, 24, report.Threshold)
	assert.Equal(t, now, report.GeneratedAt)
}

func TestNewRunReport_Empty(t *testing.T) {
	report := NewRunReport(nil, nil, 24, time.Now())

	assert.False(t, report.HasAlerts())
	assert.NotNil(t, report.Alerts)
	assert.NotNil(t, report.OK)
}
