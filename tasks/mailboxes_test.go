package tasks

import (
	"context"
	"errors"
	"testing"
	"webup/backcheck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountMailboxes(t *testing.T) {
	publicFolder := mountedDatabase("PF01")
	publicFolder.Category = backcheck.CategoryPublicFolder
	databases := []backcheck.DatabaseRecord{
		mountedDatabase("DB01"),
		mountedDatabase("DB02"),
		mountedDatabase("DB03"),
		publicFolder,
	}

	source := &fakeSource{
		mailboxes: []backcheck.Mailbox{
			{Name: "alice", Database: "DB01"},
			{Name: "bob", Database: "DB01", ArchiveDatabase: "DB02"},
			{Name: "carol", Database: "db02", ArchiveDatabase: "DB02"},
			{Name: "dave", Database: "DB01", ArchiveDatabase: "DB01"},
		},
	}

	counts, err := CountMailboxes(context.Background(), source, databases)

	require.NoError(t, err)
	assert.Equal(t, 4, counts["DB01"])
	assert.Equal(t, 3, counts["DB02"])
	assert.Equal(t, 0, counts["DB03"])
	_, ok := counts["PF01"]
	assert.False(t, ok)

	assert.Equal(t, 1, source.mailboxesCalls)
	assert.Equal(t, []string{"DB01", "DB02", "DB03"}, source.requestedDatabases)
}

func TestCountMailboxes_NoMailboxDatabase(t *testing.T) {
	source := &fakeSource{}

	counts, err := CountMailboxes(context.Background(), source, nil)

	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.Equal(t, 0, source.mailboxesCalls)
}

func TestCountMailboxes_ServiceUnavailable(t *testing.T) {
	source := &fakeSource{mailboxesErr: errUnreachable}

	_, err := CountMailboxes(context.Background(), source, []backcheck.DatabaseRecord{mountedDatabase("DB01")})

	assert.True(t, errors.Is(err, backcheck.ErrServiceUnavailable))
}
