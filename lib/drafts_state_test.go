package lib

import (
	"testing"

	shared "draftshare-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedState() (*DraftsState, []*shared.Draft) {
	drafts := []*shared.Draft{
		{Id: "a", Content: "first"},
		{Id: "b", Content: "second"},
		{Id: "c", Content: "third"},
	}
	state := NewDraftsState()
	state.SetAll(drafts)
	return state, drafts
}

func TestPrepend(t *testing.T) {
	state, seeded := seedState()

	newDraft := &shared.Draft{Id: "d", Content: "newest"}
	state.Prepend(newDraft)

	list := state.List()
	require.Len(t, list, 4)
	assert.Same(t, newDraft, list[0])
	for i, d := range seeded {
		assert.Same(t, d, list[i+1])
	}
}

func TestUpdateReplacesOnlyMatchingEntry(t *testing.T) {
	state, seeded := seedState()

	updated := &shared.Draft{Id: "b", Content: "edited"}
	state.Update(updated)

	list := state.List()
	require.Len(t, list, 3)
	assert.Same(t, seeded[0], list[0])
	assert.Same(t, updated, list[1])
	assert.Same(t, seeded[2], list[2])
}

func TestUpdateUnknownIdIsNoOp(t *testing.T) {
	state, seeded := seedState()

	state.Update(&shared.Draft{Id: "zzz", Content: "ghost"})

	list := state.List()
	require.Len(t, list, 3)
	for i, d := range seeded {
		assert.Same(t, d, list[i])
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	state, seeded := seedState()

	state.Remove("b")

	list := state.List()
	require.Len(t, list, 2)
	assert.Same(t, seeded[0], list[0])
	assert.Same(t, seeded[2], list[1])
}

func TestListReturnsSnapshot(t *testing.T) {
	state, _ := seedState()

	snapshot := state.List()
	state.Remove("a")

	assert.Len(t, snapshot, 3)
	assert.Equal(t, 2, state.Len())
}
