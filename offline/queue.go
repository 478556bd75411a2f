package offline

import (
	"encoding/json"
	"fmt"

	"irbana.com/pontosync/kv"
)

const queueKeyPrefix = "pending:"

// Queue is a durable FIFO of pending actions, one list per kind, backed
// by a key-value store. Order of insertion is order of replay.
type Queue struct {
	store kv.Store
}

func NewQueue(store kv.Store) *Queue {
	return &Queue{store: store}
}

func queueKey(kind Kind) string {
	return queueKeyPrefix + string(kind)
}

// Pending returns the queued actions of a kind, oldest first. A missing
// or unreadable key yields an empty queue rather than an error: a queue
// that cannot be read must still let new captures through.
func (q *Queue) Pending(kind Kind) []PendingAction {
	raw, found, err := q.store.Get(queueKey(kind))
	if err != nil || !found {
		return nil
	}

	var actions []PendingAction
	if err := json.Unmarshal(raw, &actions); err != nil {
		return nil
	}
	return actions
}

// Enqueue appends an action to the tail of its kind's queue.
func (q *Queue) Enqueue(action PendingAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	actions := append(q.Pending(action.Kind), action)
	return q.save(action.Kind, actions)
}

// Replace overwrites a kind's queue wholesale. The replayer uses it to
// persist the retained remainder after a drain attempt.
func (q *Queue) Replace(kind Kind, actions []PendingAction) error {
	if len(actions) == 0 {
		return q.store.Remove(queueKey(kind))
	}
	return q.save(kind, actions)
}

// Len reports how many actions of a kind are waiting.
func (q *Queue) Len(kind Kind) int {
	return len(q.Pending(kind))
}

func (q *Queue) save(kind Kind, actions []PendingAction) error {
	raw, err := json.Marshal(actions)
	if err != nil {
		return fmt.Errorf("encode queue %s: %w", kind, err)
	}
	if err := q.store.Set(queueKey(kind), raw); err != nil {
		return fmt.Errorf("persist queue %s: %w", kind, err)
	}
	return nil
}
