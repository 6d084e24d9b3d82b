package memory

import "sync"

// PendingQuery is the value handed from the search/home flow to the
// conversation view: the submitted query and the conversation it
// targets.
type PendingQuery struct {
	Query          string
	ConversationId *string
}

// HandoffRepository is a single-slot, last-write-wins channel between
// two independently running views. The producer Sets, the consumer
// Takes exactly once; the slot never queues.
type HandoffRepository struct {
	mu      sync.Mutex
	pending PendingQuery
}

func NewHandoffRepository() *HandoffRepository {
	return &HandoffRepository{}
}

// Set overwrites any unconsumed pending query.
func (r *HandoffRepository) Set(query string, conversationId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := conversationId
	r.pending = PendingQuery{Query: query, ConversationId: &id}
}

// Peek reads the slot without consuming it.
func (r *HandoffRepository) Peek() PendingQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Take reads and clears the slot in one step. The second return value
// reports whether a query was pending.
func (r *HandoffRepository) Take() (PendingQuery, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pending := r.pending
	r.pending = PendingQuery{}
	return pending, pending.Query != ""
}

// Clear resets the slot to its empty defaults. Clearing an already
// empty slot is a no-op.
func (r *HandoffRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = PendingQuery{}
}
