// Package docstore keeps named documents in a sqlite database.
//
// Bodies are stored in the dcm binary format compressed with zstd, next
// to the document hash so that unchanged puts can be detected without
// decoding.
package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kreopt/structure/dcm"
	"github.com/kreopt/structure/debug"
	"github.com/kreopt/structure/ir"
)

// ErrNotFound is returned by Get and Delete for unknown names.
var ErrNotFound = errors.New("docstore: document not found")

const schema = `CREATE TABLE IF NOT EXISTS documents (
	name    TEXT PRIMARY KEY,
	hash    INTEGER NOT NULL,
	body    BLOB NOT NULL,
	updated INTEGER NOT NULL
)`

// Store is a sqlite backed document store. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	logger *slog.Logger

	mu  sync.Mutex // guards enc
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Info describes a stored document without its body.
type Info struct {
	Name    string
	Hash    uint64
	Size    int
	Updated time.Time
}

// Open opens or creates the database at path.
// If logger is nil, slog.Default() will be used.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema in %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, err
	}
	return &Store{db: db, logger: logger, enc: enc, dec: dec}, nil
}

// Close releases the database and the codecs.
func (s *Store) Close() error {
	s.dec.Close()
	s.enc.Close()
	return s.db.Close()
}

// Put stores d under name, replacing any previous document. It reports
// whether the stored content changed.
func (s *Store) Put(ctx context.Context, name string, d ir.Document) (bool, error) {
	if name == "" {
		return false, errors.New("docstore: empty name")
	}
	if err := d.Err(); err != nil {
		return false, err
	}
	h := d.Hash()
	var old int64
	err := s.db.QueryRowContext(ctx, `SELECT hash FROM documents WHERE name = ?`, name).Scan(&old)
	switch {
	case err == nil && uint64(old) == h:
		s.logger.Debug("document unchanged", "name", name)
		return false, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	raw, err := dcm.Encode(d)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", name, err)
	}
	s.mu.Lock()
	body := s.enc.EncodeAll(raw, nil)
	s.mu.Unlock()
	if debug.Store() {
		debug.Logf("put %s hash %x raw %d compressed %d\n", name, h, len(raw), len(body))
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (name, hash, body, updated) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET hash = excluded.hash, body = excluded.body, updated = excluded.updated`,
		name, int64(h), body, time.Now().UnixNano())
	if err != nil {
		return false, fmt.Errorf("write %s: %w", name, err)
	}
	s.logger.Info("stored document", "name", name, "bytes", len(body))
	return true, nil
}

// Get loads the document stored under name.
func (s *Store) Get(ctx context.Context, name string) (ir.Document, error) {
	var (
		body []byte
		h    int64
	)
	err := s.db.QueryRowContext(ctx, `SELECT hash, body FROM documents WHERE name = ?`, name).Scan(&h, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Document{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return ir.Document{}, fmt.Errorf("read %s: %w", name, err)
	}
	raw, err := s.dec.DecodeAll(body, nil)
	if err != nil {
		return ir.Document{}, fmt.Errorf("decompress %s: %w", name, err)
	}
	d, err := dcm.Decode(raw)
	if err != nil {
		return ir.Document{}, fmt.Errorf("decode %s: %w", name, err)
	}
	if d.Hash() != uint64(h) {
		s.logger.Warn("stored hash mismatch", "name", name)
	}
	if debug.Store() {
		debug.Logf("get %s %v\n", name, d)
	}
	return d, nil
}

// Delete removes the document stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s.logger.Info("deleted document", "name", name)
	return nil
}

// List returns the stored documents ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, hash, length(body), updated FROM documents ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Info
	for rows.Next() {
		var (
			info    Info
			h, nano int64
		)
		if err := rows.Scan(&info.Name, &h, &info.Size, &nano); err != nil {
			return nil, err
		}
		info.Hash = uint64(h)
		info.Updated = time.Unix(0, nano)
		res = append(res, info)
	}
	return res, rows.Err()
}
