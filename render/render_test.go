package render

import (
	"strings"
	"testing"
	"time"
	"webup/backcheck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func sampleReport() backcheck.RunReport {
	return backcheck.NewRunReport([]backcheck.EvaluatedDatabase{
		{
			Name:           "DB01",
			Owner:          "DAG01",
			Category:       backcheck.CategoryMailbox,
			Mailboxes:      120,
			Status:         backcheck.StatusAlert,
			LastBackupKind: backcheck.BackupFull,
			HoursAgo:       30,
			LastBackup:     generatedAt.Add(-30 * time.Hour),
		},
		{
			Name:           "DB02",
			Owner:          "DAG01",
			Category:       backcheck.CategoryMailbox,
			Status:         backcheck.StatusAlert,
			LastBackupKind: backcheck.BackupNone,
		},
		{
			Name:             "PF01",
			Owner:            "EX03",
			Category:         backcheck.CategoryPublicFolder,
			Status:           backcheck.StatusOK,
			LastBackupKind:   backcheck.BackupIncremental,
			HoursAgo:         2,
			LastBackup:       generatedAt.Add(-2 * time.Hour),
			BackupInProgress: true,
		},
	}, []string{"DB09"}, 24, generatedAt)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "0 database backup alerts today", Summary(0))
	assert.Equal(t, "1 database backup alert today", Summary(1))
	assert.Equal(t, "2 database backup alerts today", Summary(2))
}

func TestRender(t *testing.T) {
	result, err := Render(sampleReport())

	require.NoError(t, err)
	assert.Contains(t, result, "2 database backup alerts today")
	assert.Contains(t, result, "Databases in alert")
	assert.Contains(t, result, "#D9534F")
	assert.Contains(t, result, "#5CB85C")
	assert.Contains(t, result, "DAG01")
	assert.Contains(t, result, "120")
	assert.Contains(t, result, "Public Folder")
	assert.Contains(t, result, "n/a")
	assert.Contains(t, result, "never backed up")
	assert.Contains(t, result, "2026-10-13 03:30:00 UTC")
	assert.Contains(t, result, "Generated at 2026-10-14 09:30:00 UTC")
	assert.Contains(t, result, "DB09")

	// the alert table comes first
	assert.Less(t, strings.Index(result, "DB01"), strings.Index(result, "PF01"))
}

func TestRender_NoAlert(t *testing.T) {
	report := backcheck.NewRunReport([]backcheck.EvaluatedDatabase{
		{Name: "DB01", Category: backcheck.CategoryMailbox, Status: backcheck.StatusOK, LastBackupKind: backcheck.BackupFull, HoursAgo: 3, LastBackup: generatedAt},
	}, nil, 24, generatedAt)

	result, err := Render(report)

	require.NoError(t, err)
	assert.Contains(t, result, "0 database backup alerts today")
	assert.Contains(t, result, "No database exceeds the backup threshold of 24 hours.")
	assert.NotContains(t, result, "Databases in alert")
	assert.NotContains(t, result, "#D9534F")
	assert.NotContains(t, result, "Not evaluated")
}

func TestRender_SingleAlert(t *testing.T) {
	report := backcheck.NewRunReport([]backcheck.EvaluatedDatabase{
		{Name: "DB01", Category: backcheck.CategoryMailbox, Status: backcheck.StatusAlert, LastBackupKind: backcheck.BackupNone},
	}, nil, 24, generatedAt)

	result, err := Render(report)

	require.NoError(t, err)
	assert.Contains(t, result, "1 database backup alert today")
	assert.Contains(t, result, "No database is within the backup threshold.")
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(sampleReport())
	require.NoError(t, err)
	second, err := Render(sampleReport())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
