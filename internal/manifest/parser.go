// Package manifest provides addon manifest parsing and discovery.
// Manifests are JSON documents (manifest.json), with YAML accepted as an
// equivalent encoding (manifest.yaml, manifest.yml).
package manifest

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fanexid/addonlint/pkg/fileutil"
)

// Parser handles manifest file parsing operations.
type Parser struct{}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a manifest file from the given path.
// A read failure is returned as an error; a decode failure is recorded in
// the returned File's ParseErr so the caller can keep validating other files.
func (p *Parser) ParseFile(path string) (*File, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	f := p.ParseBytes(data, path)
	return f, nil
}

// ParseBytes parses manifest content from bytes.
// The path parameter selects the encoding by extension and provides error context.
func (p *Parser) ParseBytes(data []byte, path string) *File {
	f := &File{
		Path: path,
		Dir:  filepath.Dir(path),
		Raw:  data,
	}

	isYAML := false
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		isYAML = true
	}

	var doc any
	var err error
	if isYAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		f.ParseErr = &ParseError{Path: path, Err: err}
		return f
	}

	// The typed decode is best-effort: a field holding the wrong type is a
	// schema violation against Doc, not a syntax failure. Both decoders keep
	// going past type mismatches, so whatever decoded cleanly (the domain in
	// particular) stays available to the later checks.
	var m Manifest
	if isYAML {
		_ = yaml.Unmarshal(data, &m)
	} else {
		_ = json.Unmarshal(data, &m)
	}

	f.Doc = doc
	f.Manifest = &m
	return f
}
