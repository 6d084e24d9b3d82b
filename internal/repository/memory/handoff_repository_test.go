package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoffSetAndTake(t *testing.T) {
	handoff := NewHandoffRepository()

	handoff.Set("foo", "conv-1")

	pending, ok := handoff.Take()
	require.True(t, ok)
	assert.Equal(t, "foo", pending.Query)
	require.NotNil(t, pending.ConversationId)
	assert.Equal(t, "conv-1", *pending.ConversationId)

	// Take consumes: the slot is back to its empty defaults.
	empty, ok := handoff.Take()
	assert.False(t, ok)
	assert.Equal(t, "", empty.Query)
	assert.Nil(t, empty.ConversationId)
}

func TestHandoffOverwrites(t *testing.T) {
	handoff := NewHandoffRepository()

	handoff.Set("first", "conv-1")
	handoff.Set("second", "conv-2")

	pending, ok := handoff.Take()
	require.True(t, ok)
	assert.Equal(t, "second", pending.Query)
	assert.Equal(t, "conv-2", *pending.ConversationId)
}

func TestHandoffClearIdempotent(t *testing.T) {
	handoff := NewHandoffRepository()
	handoff.Set("foo", "conv-1")

	handoff.Clear()
	afterOne := handoff.Peek()

	handoff.Clear()
	afterTwo := handoff.Peek()

	assert.Equal(t, afterOne, afterTwo)
	assert.Equal(t, "", afterTwo.Query)
	assert.Nil(t, afterTwo.ConversationId)
}

func TestHandoffPeekDoesNotConsume(t *testing.T) {
	handoff := NewHandoffRepository()
	handoff.Set("foo", "conv-1")

	_ = handoff.Peek()
	pending, ok := handoff.Take()
	require.True(t, ok)
	assert.Equal(t, "foo", pending.Query)
}
