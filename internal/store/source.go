package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dimitrije/ticketdesk-api/internal/models"
)

// ReadSource loads a document to import. Files ending in .yaml or .yml are
// decoded as YAML; anything else goes through Parse.
func ReadSource(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc := models.NewDocument()
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		doc.Normalize()
		return doc, nil
	default:
		return Parse(path, data)
	}
}
