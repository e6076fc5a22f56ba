package tasks

import (
	"context"
	"fmt"
	"webup/backcheck"

	log "github.com/sirupsen/logrus"
)

// ListDatabases fetches both database categories, without recovery and excluded databases
func ListDatabases(ctx context.Context, source backcheck.ManagementSource, config backcheck.Config) ([]backcheck.DatabaseRecord, error) {

	log.Debugln("Fetching databases from the management API...")

	mailboxDatabases, err := source.MailboxDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to list mailbox databases: %v", backcheck.ErrServiceUnavailable, err)
	}

	publicFolderDatabases, err := source.PublicFolderDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to list public folder databases: %v", backcheck.ErrServiceUnavailable, err)
	}

	databases := []backcheck.DatabaseRecord{}

	for _, db := range append(mailboxDatabases, publicFolderDatabases...) {
		if db.Recovery {
			log.WithField("name", db.Name).Debugln("Recovery database. Skipping.")
			continue
		}

		if config.IsExcluded(db.Name) {
			log.WithField("name", db.Name).Debugln("Database excluded by configuration. Skipping.")
			continue
		}

		databases = append(databases, db)
	}

	log.WithFields(log.Fields{
		"mailbox":       len(mailboxDatabases),
		"public_folder": len(publicFolderDatabases),
		"retained":      len(databases),
	}).Infoln("Databases fetched")

	return databases, nil
}
