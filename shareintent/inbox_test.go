package shareintent

import (
	"os"
	"path/filepath"
	"testing"

	"draftshare-cli/lib"
	shared "draftshare-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInboxFile(t *testing.T, dir, name, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))
	return path
}

func TestSweepDispatchesAndRetiresPayloads(t *testing.T) {
	dir := t.TempDir()
	client := &fakeApiClient{}
	controller := NewController(ControllerParams{Client: client, Drafts: lib.NewDraftsState()})
	inbox := NewInbox(dir, controller)

	textPath := writeInboxFile(t, dir, "a.json", `{"text": "hello world"}`)
	urlPath := writeInboxFile(t, dir, "b.json", `{"text": "https://example.com/a"}`)

	require.NoError(t, inbox.Sweep())

	calls := client.recordedCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, shared.SourceTypeText, calls[0].kind)
	assert.Equal(t, "hello world", calls[0].input)
	assert.Equal(t, shared.SourceTypeUrl, calls[1].kind)
	assert.Equal(t, "https://example.com/a", calls[1].input)

	assert.NoFileExists(t, textPath)
	assert.NoFileExists(t, urlPath)
}

func TestSweepDropsMalformedPayloads(t *testing.T) {
	dir := t.TempDir()
	client := &fakeApiClient{}
	controller := NewController(ControllerParams{Client: client, Drafts: lib.NewDraftsState()})
	inbox := NewInbox(dir, controller)

	badPath := writeInboxFile(t, dir, "bad.json", `{not json`)
	ignoredPath := writeInboxFile(t, dir, "notes.txt", "not a payload")

	require.NoError(t, inbox.Sweep())

	assert.Empty(t, client.recordedCalls())
	assert.NoFileExists(t, badPath)
	assert.FileExists(t, ignoredPath)
}

func TestSweepSkipsAlreadyConsumedNames(t *testing.T) {
	dir := t.TempDir()
	client := &fakeApiClient{}
	controller := NewController(ControllerParams{Client: client, Drafts: lib.NewDraftsState()})
	inbox := NewInbox(dir, controller)

	writeInboxFile(t, dir, "a.json", `{"text": "hello"}`)
	require.NoError(t, inbox.Sweep())
	require.Len(t, client.recordedCalls(), 1)

	// same name reappearing is a redelivery, not a new payload
	writeInboxFile(t, dir, "a.json", `{"text": "hello"}`)
	require.NoError(t, inbox.Sweep())
	assert.Len(t, client.recordedCalls(), 1)

	writeInboxFile(t, dir, "z.json", `{"text": "another"}`)
	require.NoError(t, inbox.Sweep())
	assert.Len(t, client.recordedCalls(), 2)
}
