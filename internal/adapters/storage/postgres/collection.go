package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"animal-shelter-api/internal/ports/docstore"

	"github.com/jackc/pgx/v5/pgconn"
)

// Cada colección es una tabla (seq, id, doc jsonb). El _id también vive dentro
// de doc, así los filtros por igualdad se resuelven todos con @>.

const uniqueViolation = "23505"

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type Client struct {
	db *sql.DB

	mu    sync.Mutex
	ready map[string]bool
}

func NewClient(db *sql.DB) *Client {
	return &Client{db: db, ready: make(map[string]bool)}
}

func (c *Client) Collection(name string) docstore.Collection {
	return &Collection{client: c, table: name}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close()
}

// ensureTable crea la tabla la primera vez que se usa la colección.
func (c *Client) ensureTable(ctx context.Context, table string) error {
	if !identRe.MatchString(table) {
		return fmt.Errorf("postgres: invalid collection name %q", table)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready[table] {
		return nil
	}

	_, err := c.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			seq BIGSERIAL,
			id  TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		)
	`, table))
	if err != nil {
		return fmt.Errorf("postgres: create table %s: %w", table, err)
	}

	c.ready[table] = true
	return nil
}

type Collection struct {
	client *Client
	table  string
}

func (c *Collection) Find(ctx context.Context, filter docstore.Filter, out any) error {
	if err := c.client.ensureTable(ctx, c.table); err != nil {
		return err
	}
	f, err := filterJSON(filter)
	if err != nil {
		return err
	}

	rows, err := c.client.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT doc FROM %s
		WHERE doc @> $1::jsonb
		ORDER BY seq ASC
	`, c.table), f)
	if err != nil {
		return fmt.Errorf("postgres: find in %s: %w", c.table, err)
	}
	defer rows.Close()

	docs := make([]json.RawMessage, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("postgres: scan %s: %w", c.table, err)
		}
		docs = append(docs, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("postgres: iterate %s: %w", c.table, err)
	}

	b, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (c *Collection) FindOne(ctx context.Context, filter docstore.Filter, out any) error {
	if err := c.client.ensureTable(ctx, c.table); err != nil {
		return err
	}
	f, err := filterJSON(filter)
	if err != nil {
		return err
	}

	var raw []byte
	err = c.client.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT doc FROM %s
		WHERE doc @> $1::jsonb
		ORDER BY seq ASC
		LIMIT 1
	`, c.table), f).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return docstore.ErrNotFound
		}
		return fmt.Errorf("postgres: find one in %s: %w", c.table, err)
	}

	return json.Unmarshal(raw, out)
}

func (c *Collection) Count(ctx context.Context, filter docstore.Filter) (int64, error) {
	if err := c.client.ensureTable(ctx, c.table); err != nil {
		return 0, err
	}
	f, err := filterJSON(filter)
	if err != nil {
		return 0, err
	}

	var n int64
	err = c.client.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT count(*) FROM %s WHERE doc @> $1::jsonb
	`, c.table), f).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("postgres: count %s: %w", c.table, err)
	}
	return n, nil
}

func (c *Collection) InsertOne(ctx context.Context, doc any) (string, error) {
	if err := c.client.ensureTable(ctx, c.table); err != nil {
		return "", err
	}

	m, err := toMap(doc)
	if err != nil {
		return "", err
	}
	id, _ := m[docstore.IDField].(string)
	if strings.TrimSpace(id) == "" {
		id = docstore.NewID()
		m[docstore.IDField] = id
	}

	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}

	_, err = c.client.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)
	`, c.table), id, string(b))
	if err != nil {
		return "", mapErr(fmt.Sprintf("insert into %s", c.table), err)
	}
	return id, nil
}

func (c *Collection) UpdateOne(ctx context.Context, filter docstore.Filter, set map[string]any) (docstore.UpdateResult, error) {
	if err := c.client.ensureTable(ctx, c.table); err != nil {
		return docstore.UpdateResult{}, err
	}
	f, err := filterJSON(filter)
	if err != nil {
		return docstore.UpdateResult{}, err
	}

	patch := make(map[string]any, len(set))
	for k, v := range set {
		if k == docstore.IDField {
			continue
		}
		patch[k] = v
	}
	p, err := json.Marshal(patch)
	if err != nil {
		return docstore.UpdateResult{}, err
	}

	// target.doc es la versión previa; t.doc en RETURNING es la nueva.
	var modified bool
	err = c.client.db.QueryRowContext(ctx, fmt.Sprintf(`
		WITH target AS (
			SELECT id, doc FROM %[1]s
			WHERE doc @> $1::jsonb
			ORDER BY seq ASC
			LIMIT 1
			FOR UPDATE
		)
		UPDATE %[1]s AS t
		SET doc = t.doc || $2::jsonb
		FROM target
		WHERE t.id = target.id
		RETURNING target.doc IS DISTINCT FROM t.doc
	`, c.table), f, string(p)).Scan(&modified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return docstore.UpdateResult{}, nil
		}
		return docstore.UpdateResult{}, mapErr(fmt.Sprintf("update %s", c.table), err)
	}

	res := docstore.UpdateResult{Matched: 1}
	if modified {
		res.Modified = 1
	}
	return res, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter docstore.Filter) (int64, error) {
	if err := c.client.ensureTable(ctx, c.table); err != nil {
		return 0, err
	}
	f, err := filterJSON(filter)
	if err != nil {
		return 0, err
	}

	res, err := c.client.db.ExecContext(ctx, fmt.Sprintf(`
		DELETE FROM %[1]s
		WHERE id = (
			SELECT id FROM %[1]s
			WHERE doc @> $1::jsonb
			ORDER BY seq ASC
			LIMIT 1
		)
	`, c.table), f)
	if err != nil {
		return 0, fmt.Errorf("postgres: delete from %s: %w", c.table, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (c *Collection) EnsureUniqueIndex(ctx context.Context, field string) error {
	if err := c.client.ensureTable(ctx, c.table); err != nil {
		return err
	}
	if !identRe.MatchString(field) {
		return fmt.Errorf("postgres: invalid index field %q", field)
	}

	_, err := c.client.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE UNIQUE INDEX IF NOT EXISTS %[1]s_%[2]s_uniq ON %[1]s ((doc->>'%[2]s'))
	`, c.table, field))
	if err != nil {
		return mapErr(fmt.Sprintf("create unique index %s.%s", c.table, field), err)
	}
	return nil
}

func filterJSON(f docstore.Filter) (string, error) {
	if len(f) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("postgres: encode filter: %w", err)
	}
	return string(b), nil
}

func toMap(doc any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("postgres: encode document: %w", err)
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("postgres: decode document: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func mapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("postgres: %s: %w", op, docstore.ErrDuplicateKey)
	}
	return fmt.Errorf("postgres: %s: %w", op, err)
}
