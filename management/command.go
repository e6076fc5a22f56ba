package management

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"webup/backcheck"

	log "github.com/sirupsen/logrus"
)

// Resources appended to the command line
const (
	ResourceMailboxDatabases      = "mailbox-databases"
	ResourcePublicFolderDatabases = "publicfolder-databases"
	ResourceMailboxes             = "mailboxes"
)

// CommandSource executes a custom command (a management shell wrapper, typically)
// and reads the JSON it prints on stdout
type CommandSource struct {
	Command []string
	Timeout time.Duration
}

// NewCommandSource returns a source running the command of the management settings
func NewCommandSource(spec backcheck.ManagementSpec) CommandSource {
	return CommandSource{
		Command: spec.Command,
		Timeout: time.Duration(spec.Timeout) * time.Second,
	}
}

// MailboxDatabases implements backcheck.ManagementSource
func (s CommandSource) MailboxDatabases(ctx context.Context) ([]backcheck.DatabaseRecord, error) {
	output, err := s.run(ctx, ResourceMailboxDatabases)
	if err != nil {
		return nil, err
	}
	return backcheck.DatabasesFromJSON(output, backcheck.CategoryMailbox)
}

// PublicFolderDatabases implements backcheck.ManagementSource
func (s CommandSource) PublicFolderDatabases(ctx context.Context) ([]backcheck.DatabaseRecord, error) {
	output, err := s.run(ctx, ResourcePublicFolderDatabases)
	if err != nil {
		return nil, err
	}
	return backcheck.DatabasesFromJSON(output, backcheck.CategoryPublicFolder)
}

// Mailboxes implements backcheck.ManagementSource
func (s CommandSource) Mailboxes(ctx context.Context, databases []string) ([]backcheck.Mailbox, error) {
	output, err := s.run(ctx, ResourceMailboxes, databases...)
	if err != nil {
		return nil, err
	}
	return backcheck.MailboxesFromJSON(output)
}

func (s CommandSource) run(ctx context.Context, resource string, args ...string) ([]byte, error) {
	if len(s.Command) == 0 {
		return nil, fmt.Errorf("no command configured")
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	cmdArgs := append([]string{}, s.Command[1:]...)
	cmdArgs = append(cmdArgs, resource)
	cmdArgs = append(cmdArgs, args...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.Command[0], cmdArgs...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.WithFields(log.Fields{
		"command":  s.Command[0],
		"resource": resource,
	}).Debugln("Executing management command")

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s failed: %w: %s", s.Command[0], resource, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}
