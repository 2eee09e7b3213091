package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements API in memory. It backs the service when no
// hosted database token is configured, and the handler tests.
type MemoryStore struct {
	mu      sync.RWMutex
	pages   map[string]*memPage
	schemas map[string]*Database
	created map[string][]string
	seq     int64
	now     func() time.Time
}

type memPage struct {
	databaseID string
	page       Page
	seq        int64
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pages:   make(map[string]*memPage),
		schemas: make(map[string]*Database),
		created: make(map[string][]string),
		now:     time.Now,
	}
}

// SetSchema registers the schema returned by RetrieveDatabase.
func (s *MemoryStore) SetSchema(databaseID string, db *Database) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas[databaseID] = db
}

// TrackCreatedTime makes property a created_time column of databaseID:
// pages inserted afterwards carry it, set to the page's creation time.
func (s *MemoryStore) TrackCreatedTime(databaseID, property string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created[databaseID] = append(s.created[databaseID], property)
}

// Insert stores a fully formed page as if it had been read upstream.
func (s *MemoryStore) Insert(databaseID string, p Page) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedTime == "" {
		p.CreatedTime = s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	props := make(map[string]*Property, len(p.Properties))
	for name, prop := range p.Properties {
		props[name] = prop
	}
	for _, name := range s.created[databaseID] {
		ct := p.CreatedTime
		props[name] = &Property{Type: "created_time", Created: &ct}
	}
	p.Properties = props
	s.seq++
	s.pages[p.ID] = &memPage{databaseID: databaseID, page: p, seq: s.seq}
	return p
}

func (s *MemoryStore) QueryDatabase(ctx context.Context, databaseID string, q *QueryRequest) ([]Page, error) {
	if q == nil {
		q = &QueryRequest{}
	}
	s.mu.RLock()
	matched := make([]memPage, 0)
	for _, mp := range s.pages {
		if mp.databaseID != databaseID || mp.page.Archived {
			continue
		}
		if !matchFilter(&mp.page, q.Filter) {
			continue
		}
		matched = append(matched, *mp)
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })
	for k := len(q.Sorts) - 1; k >= 0; k-- {
		srt := q.Sorts[k]
		sort.SliceStable(matched, func(i, j int) bool {
			a, b := sortKey(&matched[i].page, srt), sortKey(&matched[j].page, srt)
			if srt.Direction == Descending {
				return a > b
			}
			return a < b
		})
	}

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	out := make([]Page, 0, len(matched))
	for _, mp := range matched {
		out = append(out, mp.page)
	}
	return out, nil
}

func (s *MemoryStore) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mp, ok := s.pages[pageID]
	if !ok {
		return nil, notFound(pageID)
	}
	p := mp.page
	return &p, nil
}

func (s *MemoryStore) CreatePage(ctx context.Context, databaseID string, props Properties) (*Page, error) {
	decoded, err := decodeProperties(props)
	if err != nil {
		return nil, err
	}
	p := s.Insert(databaseID, Page{Properties: decoded})
	return &p, nil
}

func (s *MemoryStore) UpdatePage(ctx context.Context, pageID string, props Properties) (*Page, error) {
	decoded, err := decodeProperties(props)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	mp, ok := s.pages[pageID]
	if !ok {
		return nil, notFound(pageID)
	}
	// Pages handed out earlier share the old map; replace it, never write to it.
	merged := make(map[string]*Property, len(mp.page.Properties)+len(decoded))
	for name, prop := range mp.page.Properties {
		merged[name] = prop
	}
	for name, prop := range decoded {
		merged[name] = prop
	}
	mp.page.Properties = merged
	p := mp.page
	return &p, nil
}

func (s *MemoryStore) ArchivePage(ctx context.Context, pageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	mp, ok := s.pages[pageID]
	if !ok {
		return notFound(pageID)
	}
	mp.page.Archived = true
	return nil
}

func (s *MemoryStore) RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if db, ok := s.schemas[databaseID]; ok {
		return db, nil
	}
	return &Database{ID: databaseID, Properties: map[string]*SchemaProperty{}}, nil
}

func notFound(id string) error {
	return &APIError{
		Status:  404,
		Code:    "object_not_found",
		Message: fmt.Sprintf("Could not find page with ID: %s.", id),
	}
}

// decodeProperties turns a write payload into read-shaped properties by
// round-tripping through JSON. Text fragments keep their content in Text,
// which RichText.String falls back to.
func decodeProperties(props Properties) (map[string]*Property, error) {
	out := make(map[string]*Property, len(props))
	for name, v := range props {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("notion: encode property %q: %w", name, err)
		}
		var p Property
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("notion: decode property %q: %w", name, err)
		}
		out[name] = &p
	}
	return out, nil
}

func matchFilter(p *Page, f *Filter) bool {
	if f == nil || f.Relation == nil {
		return true
	}
	for _, id := range p.Prop(f.Property).RelationIDs() {
		if id == f.Relation.Contains {
			return true
		}
	}
	return false
}

func sortKey(p *Page, s Sort) string {
	if s.Timestamp == "created_time" {
		return p.CreatedTime
	}
	prop := p.Prop(s.Property)
	if d := prop.AnyDate(); d != "" {
		return d
	}
	if c := prop.CreatedTimeValue(); c != "" {
		return c
	}
	return prop.Text()
}
