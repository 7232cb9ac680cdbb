package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/jsonc"

	"github.com/dimitrije/ticketdesk-api/internal/models"
)

// ParseError reports a data file whose contents are not a valid document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileStore keeps the document in memory and rewrites the whole file on
// every committed Update. New ids are max(stored id)+1.
type FileStore struct {
	path string

	mu  sync.RWMutex
	doc *models.Document
}

// OpenFileStore loads path, creating it with an empty document if it does
// not exist.
func OpenFileStore(path string) (*FileStore, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, doc: doc}, nil
}

// Load reads the document at path. A missing file is created empty and an
// empty file yields an empty document. Comments and trailing commas are
// accepted.
func Load(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		doc := models.NewDocument()
		if err := Save(path, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes data as a document. path is only used in errors.
func Parse(path string, data []byte) (*models.Document, error) {
	doc := models.NewDocument()
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	doc.Normalize()
	return doc, nil
}

// Save writes doc to path with two-space indentation, replacing the file
// through a rename so readers never see a half-written document.
func Save(path string, doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".data-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) View(ctx context.Context, fn func(doc *models.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

func (s *FileStore) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The file holds no sequences, so ids follow the highest stored id and
	// a restart hands out exactly what a running process would.
	next := s.doc.Clone()
	next.Seq = models.Sequences{}
	if err := fn(next); err != nil {
		return err
	}
	next.Normalize()

	if err := Save(s.path, next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
