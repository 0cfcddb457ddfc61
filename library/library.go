package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/royberris/GuitarTabToPiano/model"
	"github.com/royberris/GuitarTabToPiano/tab"
)

// ErrTabNotFound is returned when no tab with the given id exists.
var ErrTabNotFound = errors.New("tab not found")

// saveDelay matches the debounce the browser editor used for its
// localStorage writes.
const saveDelay = 500 * time.Millisecond

// Store is a file-backed tab library. Mutations re-parse the tab text, so
// the store only ever persists text the parser accepts, and schedule a
// debounced save; Flush forces a synchronous one. Safe for concurrent use.
type Store struct {
	path string

	mu        sync.Mutex
	tabs      map[string]model.Tab
	debounced func(func())
}

// New opens the library at path, loading it if the file exists.
func New(path string) (*Store, error) {
	s := &Store{
		path:      path,
		tabs:      make(map[string]model.Tab),
		debounced: debounce.New(saveDelay),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read library %v: %w", path, err)
	}

	var tabs []model.Tab
	if err := json.Unmarshal(data, &tabs); err != nil {
		return nil, fmt.Errorf("could not decode library %v: %w", path, err)
	}
	for _, t := range tabs {
		s.tabs[t.ID] = t
	}
	return s, nil
}

// Create adds a new tab, assigning it a fresh id. Non-empty text must be
// parseable.
func (s *Store) Create(name string, text string) (model.Tab, error) {
	if text != "" {
		if _, err := tab.Parse(text); err != nil {
			return model.Tab{}, err
		}
	}

	t := model.Tab{
		ID:        uuid.NewString(),
		Name:      name,
		Text:      text,
		UpdatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.tabs[t.ID] = t
	s.mu.Unlock()
	s.scheduleSave()
	return t, nil
}

func (s *Store) Get(id string) (model.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tabs[id]
	if !ok {
		return model.Tab{}, fmt.Errorf("%w: %v", ErrTabNotFound, id)
	}
	return t, nil
}

// List returns every tab sorted by name (id breaks ties).
func (s *Store) List() []model.Tab {
	s.mu.Lock()
	tabs := make([]model.Tab, 0, len(s.tabs))
	for _, t := range s.tabs {
		tabs = append(tabs, t)
	}
	s.mu.Unlock()

	sort.Slice(tabs, func(i, j int) bool {
		if tabs[i].Name != tabs[j].Name {
			return tabs[i].Name < tabs[j].Name
		}
		return tabs[i].ID < tabs[j].ID
	})
	return tabs
}

func (s *Store) Rename(id string, name string) (model.Tab, error) {
	return s.update(id, func(t *model.Tab) error {
		t.Name = name
		return nil
	})
}

// SetText replaces a tab's text. The text must parse.
func (s *Store) SetText(id string, text string) (model.Tab, error) {
	return s.update(id, func(t *model.Tab) error {
		if _, err := tab.Parse(text); err != nil {
			return err
		}
		t.Text = text
		return nil
	})
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.tabs[id]
	delete(s.tabs, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %v", ErrTabNotFound, id)
	}
	s.scheduleSave()
	return nil
}

// ImportJSON ingests a dropped export: either a single tab object or an
// array of them. Imported tabs keep their id when present (replacing any
// existing tab with that id) and get a fresh one otherwise. Every non-empty
// text must parse or the whole import is rejected.
func (s *Store) ImportJSON(data []byte) ([]model.Tab, error) {
	var tabs []model.Tab
	if err := json.Unmarshal(data, &tabs); err != nil {
		var single model.Tab
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("could not decode tab import: %w", err)
		}
		tabs = []model.Tab{single}
	}

	for i := range tabs {
		if tabs[i].Text != "" {
			if _, err := tab.Parse(tabs[i].Text); err != nil {
				return nil, fmt.Errorf("tab %q: %w", tabs[i].Name, err)
			}
		}
		if tabs[i].ID == "" {
			tabs[i].ID = uuid.NewString()
		}
		tabs[i].UpdatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	for _, t := range tabs {
		s.tabs[t.ID] = t
	}
	s.mu.Unlock()
	s.scheduleSave()
	return tabs, nil
}

// Flush writes the library to disk immediately.
func (s *Store) Flush() error {
	tabs := s.List()
	data, err := json.MarshalIndent(tabs, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode library: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("could not write library %v: %w", s.path, err)
	}
	return nil
}

func (s *Store) update(id string, mutate func(*model.Tab) error) (model.Tab, error) {
	s.mu.Lock()
	t, ok := s.tabs[id]
	if !ok {
		s.mu.Unlock()
		return model.Tab{}, fmt.Errorf("%w: %v", ErrTabNotFound, id)
	}
	if err := mutate(&t); err != nil {
		s.mu.Unlock()
		return model.Tab{}, err
	}
	t.UpdatedAt = time.Now().UTC()
	s.tabs[id] = t
	s.mu.Unlock()

	s.scheduleSave()
	return t, nil
}

func (s *Store) scheduleSave() {
	s.debounced(func() {
		if err := s.Flush(); err != nil {
			fmt.Printf("Could not save library: %v\n", err)
		}
	})
}
