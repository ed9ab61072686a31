package shareintent

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"draftshare-cli/types"
)

const pollInterval = 1 * time.Second

// Inbox delivers share payloads to a Controller. OS share extensions drop
// one *.json ShareIntent snapshot per event into the inbox directory;
// acknowledging a payload deletes its file so it is never redelivered. File
// names already consumed in this session are skipped even if deletion is
// slow, so a payload is only acted on when it differs from the previous one.
type Inbox struct {
	dir        string
	controller *Controller
	seen       map[string]bool
}

func NewInbox(dir string, controller *Controller) *Inbox {
	return &Inbox{
		dir:        dir,
		controller: controller,
		seen:       map[string]bool{},
	}
}

// Run polls the inbox until the context is cancelled.
func (in *Inbox) Run(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if err := in.Sweep(); err != nil {
			log.Printf("Error sweeping share inbox: %v\n", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Sweep dispatches all pending payloads once, oldest file name first.
func (in *Inbox) Sweep() error {
	entries, err := os.ReadDir(in.dir)
	if err != nil {
		return err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if in.seen[entry.Name()] {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		in.seen[name] = true
		path := filepath.Join(in.dir, name)

		payload, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Error reading share payload %s: %v\n", name, err)
			continue
		}

		var intent types.ShareIntent
		if err := json.Unmarshal(payload, &intent); err != nil {
			// Malformed payloads are dropped silently, per the app's
			// unsupported-share semantics.
			log.Printf("Dropping malformed share payload %s: %v\n", name, err)
			if err := os.Remove(path); err != nil {
				log.Printf("Error removing share payload %s: %v\n", name, err)
			}
			continue
		}

		in.controller.Handle(&intent, func() {
			if err := os.Remove(path); err != nil {
				log.Printf("Error removing share payload %s: %v\n", name, err)
			}
		})
	}

	return nil
}
