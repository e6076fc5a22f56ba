package tasks

import (
	"time"
	"webup/backcheck"

	log "github.com/sirupsen/logrus"
)

var backupKinds = []backcheck.BackupKind{
	backcheck.BackupFull,
	backcheck.BackupDifferential,
	backcheck.BackupIncremental,
}

// Evaluate classifies a database against the threshold (in hours).
// The most recent backup kind wins; on equal age the priority is Full, Differential, Incremental.
func Evaluate(db backcheck.DatabaseRecord, now time.Time, threshold int) backcheck.EvaluatedDatabase {
	result := backcheck.EvaluatedDatabase{
		Name:             db.Name,
		Owner:            db.Owner,
		Category:         db.Category,
		LastBackupKind:   backcheck.BackupNone,
		BackupInProgress: db.BackupInProgress,
	}

	backups := db.Backups()
	found := false

	for _, kind := range backupKinds {
		timestamp := backups[kind]
		if timestamp == nil {
			continue
		}

		hours := elapsedHours(now, *timestamp)
		if !found || hours < result.HoursAgo {
			found = true
			result.LastBackupKind = kind
			result.HoursAgo = hours
			result.LastBackup = timestamp.UTC()
		}
	}

	if !found || result.HoursAgo > threshold {
		result.Status = backcheck.StatusAlert
	} else {
		result.Status = backcheck.StatusOK
	}

	log.WithFields(log.Fields{
		"name":      result.Name,
		"kind":      result.LastBackupKind,
		"hours_ago": result.HoursAgoLabel(),
		"threshold": threshold,
		"status":    result.Status,
	}).Debugln("Database evaluated")

	return result
}

// elapsedHours returns the whole hours between both instants, truncated
func elapsedHours(now time.Time, timestamp time.Time) int {
	return int(now.UTC().Sub(timestamp.UTC()) / time.Hour)
}
