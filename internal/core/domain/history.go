// internal/core/domain/history.go
package domain

import (
	"fmt"
	"time"
)

// HistoryAction represents the kind of mutation a history entry records
type HistoryAction string

// History action constants
const (
	ActionAdd    HistoryAction = "add"
	ActionModify HistoryAction = "modify"
	ActionDelete HistoryAction = "delete"
)

// HistoryEntry is an immutable audit record of one inventory mutation.
// Type and Quantity are copies of the movement state at the time of the
// action, not live references: the entry stays meaningful after the source
// movement is modified again or deleted. Entries are never updated or
// deleted by application logic.
type HistoryEntry struct {
	ID         int64         `json:"id"`
	Action     HistoryAction `json:"action"`
	Detail     string        `json:"detail"`
	Type       MovementType  `json:"type"`
	Quantity   int64         `json:"quantity"`
	MovementID *int64        `json:"inventory"`
	UserID     *int64        `json:"user"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewHistoryEntry builds the audit entry for a movement mutation, copying
// the snapshot state. For deletes the movement reference is left empty
// since the row no longer exists.
func NewHistoryEntry(action HistoryAction, snapshot *Movement, actor *User) *HistoryEntry {
	e := &HistoryEntry{
		Action:   action,
		Type:     snapshot.Type,
		Quantity: snapshot.Quantity,
	}

	verb := "adjusted"
	if action == ActionDelete {
		verb = "deleted"
	}
	if actor != nil {
		e.UserID = &actor.ID
		e.Detail = fmt.Sprintf("inventory (#%d) %s by %s (#%d)", snapshot.ID, verb, actor.Username, actor.ID)
	} else {
		e.Detail = fmt.Sprintf("inventory (#%d) %s", snapshot.ID, verb)
	}

	if action != ActionDelete {
		id := snapshot.ID
		e.MovementID = &id
	}

	return e
}
