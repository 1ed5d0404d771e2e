package benchmark

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk shape of a benchmark table: a keyed list of
// entries under "tests".
type tableFile struct {
	Tests []Entry `yaml:"tests"`
}

// Registry owns the benchmark table for the lifetime of the process. The
// table is loaded once (and optionally hot-reloaded when the backing file
// changes); readers always see an immutable snapshot, so concurrent
// extraction runs never need coordination.
type Registry struct {
	mu       sync.RWMutex
	entries  []Entry
	path     string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onReload func(count int, err error)
}

// NewRegistry creates a registry holding the given entries. Entries are
// validated; an invalid entry is a configuration error, not a skip.
func NewRegistry(entries []Entry) (*Registry, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return &Registry{entries: entries}, nil
}

// LoadFile creates a registry from a YAML benchmark table. A malformed file
// or invalid entry surfaces as an error: the table changes classification
// correctness for every subsequent call, so it must never load silently
// broken.
func LoadFile(path string) (*Registry, error) {
	entries, err := readTable(path)
	if err != nil {
		return nil, err
	}
	registry, err := NewRegistry(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	registry.path = path
	return registry, nil
}

// Entries returns a copy of the current table snapshot. The copy is the
// caller's to keep; later reloads never mutate it.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]Entry, len(r.entries))
	copy(snapshot, r.entries)
	return snapshot
}

// Count returns the number of entries in the current snapshot.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Reload re-reads the backing file and swaps in the new table. The previous
// snapshot stays in place when the reload fails.
func (r *Registry) Reload() error {
	if r.path == "" {
		return fmt.Errorf("no benchmark file configured for reload")
	}
	entries, err := readTable(r.path)
	if err != nil {
		return err
	}
	if err := validateEntries(entries); err != nil {
		return fmt.Errorf("%s: %w", r.path, err)
	}

	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()
	return nil
}

// SetOnReload registers a callback invoked after each watch-triggered reload
// attempt with the current entry count and the reload error. On failure the
// previous snapshot is retained, so the count is the retained table's size.
func (r *Registry) SetOnReload(fn func(count int, err error)) {
	r.onReload = fn
}

// Watch starts watching the backing file for changes and reloads the table
// when it is rewritten. Failed reloads keep the previous snapshot.
func (r *Registry) Watch() error {
	if r.path == "" {
		return fmt.Errorf("no benchmark file configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.path); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching %s: %w", r.path, err)
	}
	return nil
}

// watchLoop handles file system events until StopWatch.
func (r *Registry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			err := r.Reload()
			if r.onReload != nil {
				r.onReload(r.Count(), err)
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// StopWatch stops watching the backing file.
func (r *Registry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
	}
	if r.watcher != nil {
		r.watcher.Close()
	}
}

// readTable reads and parses a YAML benchmark table.
func readTable(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading benchmark table: %w", err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing benchmark table %s: %w", path, err)
	}
	if len(file.Tests) == 0 {
		return nil, fmt.Errorf("benchmark table %s contains no tests", path)
	}
	return file.Tests, nil
}

// validateEntries rejects a table containing any invalid entry.
func validateEntries(entries []Entry) error {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}
