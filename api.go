package backcheck

import (
	"context"
)

// ManagementSource is the mail-server management API queried at each run
type ManagementSource interface {
	// MailboxDatabases returns the general-purpose databases with their status detail
	MailboxDatabases(ctx context.Context) ([]DatabaseRecord, error)
	// PublicFolderDatabases returns the legacy public folder databases with their status detail
	PublicFolderDatabases(ctx context.Context) ([]DatabaseRecord, error)
	// Mailboxes returns every mailbox (primary and archive) hosted on the given databases
	Mailboxes(ctx context.Context, databases []string) ([]Mailbox, error)
}
