package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fanexid/addonlint/internal/errors"
	"github.com/fanexid/addonlint/pkg/fileutil"
)

// IndexFile is the repository index consulted when present at the target root.
const IndexFile = "addons.json"

// manifestNames are the accepted manifest file names, in preference order.
var manifestNames = []string{"manifest.json", "manifest.yaml", "manifest.yml"}

// Discover finds and parses all manifests under root.
//
// When an addons.json index exists at the root it is authoritative: each
// listed addon id names a subdirectory that must contain a manifest. Index
// defects (malformed index, entries without an id, missing directories or
// manifests) are collected as Problems, not fatal errors. Without an index,
// the tree is walked and every manifest file found is collected.
//
// The only fatal condition is an inaccessible root.
func Discover(root string) (*Set, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "accessing target directory %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf("target %s is not a directory", root)
	}

	indexPath := filepath.Join(root, IndexFile)
	if _, err := os.Stat(indexPath); err == nil {
		return discoverFromIndex(root, indexPath)
	}

	return discoverByWalk(root)
}

// discoverFromIndex reads the addons.json index and resolves each entry to
// a manifest file under its addon directory.
func discoverFromIndex(root, indexPath string) (*Set, error) {
	set := &Set{}
	parser := NewParser()

	data, err := fileutil.ReadFileWithLimit(indexPath)
	if err != nil {
		set.Problems = append(set.Problems, Problem{
			Path:    indexPath,
			Message: fmt.Sprintf("cannot read %s: %v", IndexFile, err),
		})
		return set, nil
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		set.Problems = append(set.Problems, Problem{
			Path:    indexPath,
			Message: fmt.Sprintf("invalid JSON in %s: %v", IndexFile, err),
		})
		return set, nil
	}

	if idx.Addons == nil {
		set.Problems = append(set.Problems, Problem{
			Path:    indexPath,
			Message: fmt.Sprintf("%s must contain a top-level 'addons' list", IndexFile),
		})
		return set, nil
	}

	for i, entry := range idx.Addons {
		if entry.ID == "" {
			set.Problems = append(set.Problems, Problem{
				Path:    indexPath,
				Message: fmt.Sprintf("addon entry at index %d missing 'id'", i),
			})
			continue
		}

		addonDir := filepath.Join(root, entry.ID)
		info, err := os.Stat(addonDir)
		if err != nil || !info.IsDir() {
			set.Problems = append(set.Problems, Problem{
				Path:    addonDir,
				Message: fmt.Sprintf("directory not found for addon %q", entry.ID),
			})
			continue
		}

		manifestPath, ok := findManifest(addonDir)
		if !ok {
			set.Problems = append(set.Problems, Problem{
				Path:    filepath.Join(addonDir, manifestNames[0]),
				Message: fmt.Sprintf("missing manifest for addon %q", entry.ID),
			})
			continue
		}

		appendParsed(set, parser, manifestPath)
	}

	return set, nil
}

// discoverByWalk collects every manifest file in the tree rooted at root.
// Hidden directories are skipped.
func discoverByWalk(root string) (*Set, error) {
	set := &Set{}
	parser := NewParser()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			set.Problems = append(set.Problems, Problem{
				Path:    path,
				Message: fmt.Sprintf("cannot access: %v", err),
			})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		if isManifestName(d.Name()) {
			appendParsed(set, parser, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking target directory %s", root)
	}

	return set, nil
}

// findManifest returns the first existing manifest file in dir.
func findManifest(dir string) (string, bool) {
	for _, name := range manifestNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func isManifestName(name string) bool {
	lower := strings.ToLower(name)
	for _, n := range manifestNames {
		if lower == n {
			return true
		}
	}
	return false
}

// appendParsed parses path and records the outcome on the set. Unreadable
// files become Problems; decode failures travel with the File as ParseErr.
func appendParsed(set *Set, parser *Parser, path string) {
	f, err := parser.ParseFile(path)
	if err != nil {
		set.Problems = append(set.Problems, Problem{
			Path:    path,
			Message: err.Error(),
		})
		return
	}
	set.Files = append(set.Files, *f)
}
