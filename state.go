package backcheck

import (
	"encoding/json"
	"fmt"
)

// DatabasesFromJSON decodes a list of databases and sets their category
func DatabasesFromJSON(data []byte, category Category) ([]DatabaseRecord, error) {
	records := []DatabaseRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unable to decode databases: %w", err)
	}

	for i := range records {
		records[i].Category = category
		if records[i].MountState == "" {
			records[i].MountState = Unreachable
		}
	}

	return records, nil
}

// MailboxesFromJSON decodes a list of mailboxes
func MailboxesFromJSON(data []byte) ([]Mailbox, error) {
	mailboxes := []Mailbox{}
	if err := json.Unmarshal(data, &mailboxes); err != nil {
		return nil, fmt.Errorf("unable to decode mailboxes: %w", err)
	}
	return mailboxes, nil
}
