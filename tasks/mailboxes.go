package tasks

import (
	"context"
	"fmt"
	"strings"
	"webup/backcheck"

	log "github.com/sirupsen/logrus"
)

// CountMailboxes returns the number of primary and archive mailboxes of each mailbox database, by name
func CountMailboxes(ctx context.Context, source backcheck.ManagementSource, databases []backcheck.DatabaseRecord) (map[string]int, error) {
	counts := map[string]int{}

	names := []string{}
	for _, db := range databases {
		if db.Category == backcheck.CategoryMailbox {
			names = append(names, db.Name)
		}
	}

	if len(names) == 0 {
		return counts, nil
	}

	// fetched once, only for the retained databases
	mailboxes, err := source.Mailboxes(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to list mailboxes: %v", backcheck.ErrServiceUnavailable, err)
	}

	for _, name := range names {
		count := 0
		for _, mailbox := range mailboxes {
			if strings.EqualFold(mailbox.Database, name) {
				count++
			}
			if strings.EqualFold(mailbox.ArchiveDatabase, name) {
				count++
			}
		}
		counts[name] = count
	}

	log.WithField("mailboxes", len(mailboxes)).Debugln("Mailboxes counted")

	return counts, nil
}
