package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"animal-shelter-api/internal/ports/docstore"
)

// Client es un document store in-memory (modo dev y tests).
type Client struct {
	mu   sync.Mutex
	cols map[string]*Collection
}

func NewClient() *Client {
	return &Client{cols: make(map[string]*Collection)}
}

func (c *Client) Collection(name string) docstore.Collection {
	c.mu.Lock()
	defer c.mu.Unlock()

	col, ok := c.cols[name]
	if !ok {
		col = newCollection()
		c.cols[name] = col
	}
	return col
}

func (c *Client) Ping(ctx context.Context) error  { return nil }
func (c *Client) Close(ctx context.Context) error { return nil }

// Collection guarda documentos como mapas normalizados vía JSON,
// de modo que lo que se lee se parece a lo que devolvería un store real.
type Collection struct {
	mu     sync.RWMutex
	order  []string
	docs   map[string]map[string]any
	unique map[string]struct{}
}

func newCollection() *Collection {
	return &Collection{
		docs:   make(map[string]map[string]any),
		unique: make(map[string]struct{}),
	}
}

func (c *Collection) Find(ctx context.Context, filter docstore.Filter, out any) error {
	f, err := normalize(filter)
	if err != nil {
		return err
	}

	c.mu.RLock()
	matches := make([]map[string]any, 0)
	for _, id := range c.order {
		if d := c.docs[id]; matchesFilter(d, f) {
			matches = append(matches, d)
		}
	}
	c.mu.RUnlock()

	return decodeInto(matches, out)
}

func (c *Collection) FindOne(ctx context.Context, filter docstore.Filter, out any) error {
	f, err := normalize(filter)
	if err != nil {
		return err
	}

	c.mu.RLock()
	_, d, ok := c.first(f)
	c.mu.RUnlock()

	if !ok {
		return docstore.ErrNotFound
	}
	return decodeInto(d, out)
}

func (c *Collection) Count(ctx context.Context, filter docstore.Filter) (int64, error) {
	f, err := normalize(filter)
	if err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int64
	for _, id := range c.order {
		if matchesFilter(c.docs[id], f) {
			n++
		}
	}
	return n, nil
}

func (c *Collection) InsertOne(ctx context.Context, doc any) (string, error) {
	d, err := normalize(doc)
	if err != nil {
		return "", err
	}

	id, _ := d[docstore.IDField].(string)
	if strings.TrimSpace(id) == "" {
		id = docstore.NewID()
		d[docstore.IDField] = id
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; exists {
		return "", fmt.Errorf("insert %s: %w", id, docstore.ErrDuplicateKey)
	}
	if err := c.checkUnique(id, d); err != nil {
		return "", err
	}

	c.docs[id] = d
	c.order = append(c.order, id)
	return id, nil
}

func (c *Collection) UpdateOne(ctx context.Context, filter docstore.Filter, set map[string]any) (docstore.UpdateResult, error) {
	f, err := normalize(filter)
	if err != nil {
		return docstore.UpdateResult{}, err
	}
	s, err := normalize(set)
	if err != nil {
		return docstore.UpdateResult{}, err
	}
	delete(s, docstore.IDField)

	c.mu.Lock()
	defer c.mu.Unlock()

	id, current, ok := c.first(f)
	if !ok {
		return docstore.UpdateResult{}, nil
	}

	next := make(map[string]any, len(current)+len(s))
	for k, v := range current {
		next[k] = v
	}
	for k, v := range s {
		next[k] = v
	}

	if err := c.checkUnique(id, next); err != nil {
		return docstore.UpdateResult{}, err
	}

	res := docstore.UpdateResult{Matched: 1}
	if !reflect.DeepEqual(current, next) {
		res.Modified = 1
	}
	c.docs[id] = next
	return res, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter docstore.Filter) (int64, error) {
	f, err := normalize(filter)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id, _, ok := c.first(f)
	if !ok {
		return 0, nil
	}

	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (c *Collection) EnsureUniqueIndex(ctx context.Context, field string) error {
	field = strings.TrimSpace(field)
	if field == "" {
		return fmt.Errorf("memory: index field required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	seen := map[string]struct{}{}
	for _, id := range c.order {
		v, ok := c.docs[id][field]
		if !ok || v == nil {
			continue
		}
		key := fmt.Sprint(v)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("memory: build unique index on %s: %w", field, docstore.ErrDuplicateKey)
		}
		seen[key] = struct{}{}
	}

	c.unique[field] = struct{}{}
	return nil
}

// first asume el lock tomado.
func (c *Collection) first(f map[string]any) (string, map[string]any, bool) {
	for _, id := range c.order {
		if d := c.docs[id]; matchesFilter(d, f) {
			return id, d, true
		}
	}
	return "", nil, false
}

// checkUnique asume el lock tomado.
func (c *Collection) checkUnique(id string, d map[string]any) error {
	for field := range c.unique {
		v, ok := d[field]
		if !ok || v == nil {
			continue
		}
		for otherID, other := range c.docs {
			if otherID == id {
				continue
			}
			if reflect.DeepEqual(other[field], v) {
				return fmt.Errorf("%s=%v: %w", field, v, docstore.ErrDuplicateKey)
			}
		}
	}
	return nil
}

func matchesFilter(d map[string]any, f map[string]any) bool {
	for k, want := range f {
		got, ok := d[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// normalize pasa v por JSON para comparar siempre los mismos tipos
// (string, json.Number, bool, map, slice).
func normalize(v any) (map[string]any, error) {
	out := map[string]any{}
	if v == nil {
		return out, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("memory: encode document: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("memory: decode document: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func decodeInto(v any, out any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("memory: encode result: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("memory: decode result: %w", err)
	}
	return nil
}
