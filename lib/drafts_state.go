package lib

import (
	"sync"

	shared "draftshare-cli/shared"
)

// DraftsState is the session's in-memory draft list, newest first. The
// backend is the source of truth; this is the cache the UI renders. Entries
// are only ever replaced, prepended, or removed whole.
type DraftsState struct {
	mu     sync.Mutex
	drafts []*shared.Draft
}

var CurrentDrafts = NewDraftsState()

func NewDraftsState() *DraftsState {
	return &DraftsState{}
}

// SetAll replaces the list wholesale, as on initial load or refresh.
func (s *DraftsState) SetAll(drafts []*shared.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = drafts
}

func (s *DraftsState) Prepend(draft *shared.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = append([]*shared.Draft{draft}, s.drafts...)
}

// Update replaces the entry with a matching id. Other entries are untouched.
func (s *DraftsState) Update(draft *shared.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.drafts {
		if d.Id == draft.Id {
			s.drafts[i] = draft
			return
		}
	}
}

// Remove deletes the entry with a matching id, preserving the order of the
// remaining entries.
func (s *DraftsState) Remove(draftId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.drafts {
		if d.Id == draftId {
			s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)
			return
		}
	}
}

// List returns a snapshot of the current list.
func (s *DraftsState) List() []*shared.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	drafts := make([]*shared.Draft, len(s.drafts))
	copy(drafts, s.drafts)
	return drafts
}

func (s *DraftsState) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
