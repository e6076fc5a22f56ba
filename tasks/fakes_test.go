package tasks

import (
	"context"
	"errors"
	"time"
	"webup/backcheck"
	"webup/backcheck/mail"
)

type fakeSource struct {
	mailboxDatabases      []backcheck.DatabaseRecord
	publicFolderDatabases []backcheck.DatabaseRecord
	mailboxes             []backcheck.Mailbox
	err                   error
	mailboxesErr          error
	requestedDatabases    []string
	mailboxesCalls        int
}

func (f *fakeSource) MailboxDatabases(ctx context.Context) ([]backcheck.DatabaseRecord, error) {
	return f.mailboxDatabases, f.err
}

func (f *fakeSource) PublicFolderDatabases(ctx context.Context) ([]backcheck.DatabaseRecord, error) {
	return f.publicFolderDatabases, f.err
}

func (f *fakeSource) Mailboxes(ctx context.Context, databases []string) ([]backcheck.Mailbox, error) {
	f.mailboxesCalls++
	f.requestedDatabases = databases
	return f.mailboxes, f.mailboxesErr
}

type fakeSender struct {
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) GetHost() string {
	return "relay.example.com"
}

var errUnreachable = errors.New("connection refused")

func hoursBefore(now time.Time, hours int) *time.Time {
	t := now.Add(-time.Duration(hours) * time.Hour)
	return &t
}

func mountedDatabase(name string) backcheck.DatabaseRecord {
	return backcheck.DatabaseRecord{
		Name:       name,
		Category:   backcheck.CategoryMailbox,
		Owner:      "DAG01",
		MountState: backcheck.Mounted,
	}
}
