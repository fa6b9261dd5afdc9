package index

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/wfind/wfind/internal/search"
)

// Options controls which files the builder admits into the index. Fields
// mirror the persisted configuration; the command layer maps one onto the
// other so this package stays independent of the config file format.
type Options struct {
	// MaxDepth bounds traversal below the root. Zero means unlimited.
	MaxDepth int
	// IgnoreHidden skips dotfiles and descends past no dot-directories.
	IgnoreHidden bool
	// IgnorePatterns are glob patterns (or literal names) to skip. A
	// pattern with wildcards is matched against the base name; a literal
	// is matched against the base name and, as a substring, the full path.
	IgnorePatterns []string
	// MaxFileSize excludes files larger than this many bytes. Zero means
	// no limit.
	MaxFileSize int64
	// CaseSensitive controls whether index keys keep their original case.
	CaseSensitive bool
}

// Stats summarizes one index build.
type Stats struct {
	Files    int
	Names    int
	Duration time.Duration
}

// Builder walks a directory tree and produces the filename-to-paths mapping
// the search engine consumes.
type Builder struct {
	opts Options
}

func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Build indexes every regular file under root that passes the configured
// filters. Unreadable subtrees are logged and skipped rather than failing
// the build; only a root that cannot be walked at all is an error.
func (b *Builder) Build(root string) (search.Index, Stats, error) {
	start := time.Now()

	cleanRoot := filepath.Clean(root)
	if _, err := os.Stat(cleanRoot); err != nil {
		return nil, Stats{}, err
	}

	idx := make(search.Index)
	files := 0

	err := filepath.WalkDir(cleanRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("index: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == cleanRoot {
			return nil
		}

		name := d.Name()

		if b.opts.IgnoreHidden && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if b.shouldIgnore(name, path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if b.opts.MaxDepth > 0 && b.depth(cleanRoot, path) >= b.opts.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if b.opts.MaxFileSize > 0 {
			info, err := d.Info()
			if err != nil {
				log.Printf("index: skipping %s: %v", path, err)
				return nil
			}
			if info.Size() > b.opts.MaxFileSize {
				return nil
			}
		}

		key := name
		if !b.opts.CaseSensitive {
			key = strings.ToLower(key)
		}
		idx[key] = append(idx[key], path)
		files++

		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}

	return idx, Stats{Files: files, Names: len(idx), Duration: time.Since(start)}, nil
}

// depth counts path separators between the root and an entry, so the
// root's immediate children sit at depth 1.
func (b *Builder) depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

func (b *Builder) shouldIgnore(name, path string) bool {
	for _, pattern := range b.opts.IgnorePatterns {
		if strings.ContainsAny(pattern, "*?[") {
			if doublestar.MatchUnvalidated(pattern, name) {
				return true
			}
			continue
		}
		if name == pattern || strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
