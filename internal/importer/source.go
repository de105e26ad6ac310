package importer

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Row is one raw entry of the hospital data file
type Row map[string]any

// LoadSource reads the whole hospital data file into memory
func LoadSource(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hospital data file: %w", err)
	}
	return ParseSource(data)
}

// ParseSource decodes a JSON array of hospital rows
func ParseSource(data []byte) ([]Row, error) {
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode hospital data: %w", err)
	}
	return rows, nil
}

// Source yields the current contents of the hospital data
type Source func() ([]Row, error)

// FileSource re-reads path on every call so edits to the file are picked up
func FileSource(path string) Source {
	return func() ([]Row, error) {
		return LoadSource(path)
	}
}

// StaticSource always yields rows
func StaticSource(rows []Row) Source {
	return func() ([]Row, error) {
		return rows, nil
	}
}
