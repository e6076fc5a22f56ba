package backcheck

import (
	"strconv"
	"time"
)

// Category distinguishes general-purpose databases from legacy public folder ones
type Category string

const (
	CategoryMailbox      Category = "mailbox"
	CategoryPublicFolder Category = "public_folder"
)

// Label returns the name displayed in the report
func (c Category) Label() string {
	if c == CategoryPublicFolder {
		return "Public Folder"
	}
	return "Mailbox"
}

// MountState is the state reported by the management API
type MountState string

const (
	Mounted     MountState = "mounted"
	Dismounted  MountState = "dismounted"
	Unreachable MountState = "unreachable"
)

// BackupKind is the kind of the most recent backup of a database
type BackupKind int

// Declared in tie-break priority order: on equal age, the lowest value wins.
const (
	BackupFull BackupKind = iota
	BackupDifferential
	BackupIncremental
	BackupNone
)

func (k BackupKind) String() string {
	switch k {
	case BackupFull:
		return "Full"
	case BackupDifferential:
		return "Differential"
	case BackupIncremental:
		return "Incremental"
	}
	return "None"
}

// Status is the outcome of the freshness evaluation
type Status string

const (
	StatusOK    Status = "OK"
	StatusAlert Status = "Alert"
)

// DatabaseRecord represents a database as returned by the management API
type DatabaseRecord struct {
	Name                   string     `json:"name"`
	Category               Category   `json:"category"`
	Owner                  string     `json:"owner"`
	MountState             MountState `json:"mount_state"`
	Recovery               bool       `json:"recovery"`
	LastFullBackup         *time.Time `json:"last_full_backup"`
	LastIncrementalBackup  *time.Time `json:"last_incremental_backup"`
	LastDifferentialBackup *time.Time `json:"last_differential_backup"`
	BackupInProgress       bool       `json:"backup_in_progress"`
}

// Evaluable reports whether the backup timestamps of the database can be trusted this run
func (r DatabaseRecord) Evaluable() bool {
	return r.MountState == Mounted
}

// Backups returns the timestamp of each backup kind, nil when absent
func (r DatabaseRecord) Backups() map[BackupKind]*time.Time {
	return map[BackupKind]*time.Time{
		BackupFull:         r.LastFullBackup,
		BackupDifferential: r.LastDifferentialBackup,
		BackupIncremental:  r.LastIncrementalBackup,
	}
}

// Mailbox represents a mailbox and the databases hosting it
type Mailbox struct {
	Name            string `json:"name"`
	Database        string `json:"database"`
	ArchiveDatabase string `json:"archive_database"`
}

// EvaluatedDatabase is the immutable result of the evaluation of one database
type EvaluatedDatabase struct {
	Name             string
	Owner            string
	Category         Category
	Mailboxes        int
	Status           Status
	LastBackupKind   BackupKind
	HoursAgo         int
	LastBackup       time.Time
	BackupInProgress bool
}

// WithMailboxes returns a copy holding the given mailbox count
func (e EvaluatedDatabase) WithMailboxes(count int) EvaluatedDatabase {
	e.Mailboxes = count
	return e
}

// NeverBackedUp reports whether no backup timestamp exists at all
func (e EvaluatedDatabase) NeverBackedUp() bool {
	return e.LastBackupKind == BackupNone
}

// MailboxesLabel returns the mailbox count, "n/a" for public folder databases
func (e EvaluatedDatabase) MailboxesLabel() string {
	if e.Category == CategoryPublicFolder {
		return "n/a"
	}
	return strconv.Itoa(e.Mailboxes)
}

// HoursAgoLabel returns the elapsed hours, "never" when never backed up
func (e EvaluatedDatabase) HoursAgoLabel() string {
	if e.NeverBackedUp() {
		return "never"
	}
	return strconv.Itoa(e.HoursAgo)
}

// InProgressLabel returns "Yes" or "No"
func (e EvaluatedDatabase) InProgressLabel() string {
	if e.BackupInProgress {
		return "Yes"
	}
	return "No"
}
