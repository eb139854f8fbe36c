package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// SelectorConfig is the fixed filtering configuration. It is built once and
// never mutated; the Selector compiles it into matchers at construction.
type SelectorConfig struct {
	// ExcludedDirs are directory names skipped at any depth (exact segment match).
	ExcludedDirs []string
	// IncludeExtensions are file extensions admitted case-insensitively.
	IncludeExtensions []string
	// IncludeNames are exact filenames admitted even without a matching extension.
	IncludeNames []string
	// ExcludedNames are exact filenames never admitted, regardless of the
	// allow-lists. Used to keep the tool's own artifacts out of the export.
	ExcludedNames []string
	// ExcludedExtensions are extensions never admitted, regardless of the allow-lists.
	ExcludedExtensions []string
}

func defaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		ExcludedDirs: []string{
			"node_modules", ".git", "dist", "build", "__pycache__",
			".next", ".cache", "coverage", ".nyc_output", "venv", ".venv",
		},
		IncludeExtensions: []string{
			".py", ".js", ".ts", ".tsx", ".jsx", ".json", ".md", ".txt",
			".html", ".css", ".scss", ".yaml", ".yml", ".sh", ".sql",
			".xml", ".toml", ".cfg", ".ini", ".go", ".rs", ".java",
			".c", ".cpp", ".h", ".hpp", ".env", ".gitignore", ".lock",
			".cs", ".xaml", ".csproj", ".addin", ".sln", ".resx",
		},
		IncludeNames: []string{
			"Dockerfile", "Makefile", "Procfile", ".env", ".env.example",
			".gitignore", ".dockerignore", ".prettierrc", ".eslintrc", ".replit",
		},
		ExcludedNames:      []string{outputFileName, "package-lock.json"},
		ExcludedExtensions: []string{".pdf"},
	}
}

// Selector enumerates the files to export.
type Selector struct {
	dirMatcher   *ignore.GitIgnore
	namePatterns []string
	includeNames map[string]bool
	excludeNames map[string]bool
	excludeExts  map[string]bool
}

// NewSelector compiles the configuration. The excluded-directory set is
// expressed as gitignore lines ("name/"), which match a directory of that
// name at any depth; the extension allow-list becomes "*.<ext>" patterns
// matched against lowercased basenames.
func NewSelector(cfg SelectorConfig) *Selector {
	lines := make([]string, 0, len(cfg.ExcludedDirs))
	for _, dir := range cfg.ExcludedDirs {
		lines = append(lines, dir+"/")
	}

	patterns := make([]string, 0, len(cfg.IncludeExtensions))
	for _, ext := range cfg.IncludeExtensions {
		patterns = append(patterns, "*"+strings.ToLower(ext))
	}

	s := &Selector{
		dirMatcher:   ignore.CompileIgnoreLines(lines...),
		namePatterns: patterns,
		includeNames: make(map[string]bool, len(cfg.IncludeNames)),
		excludeNames: make(map[string]bool, len(cfg.ExcludedNames)),
		excludeExts:  make(map[string]bool, len(cfg.ExcludedExtensions)),
	}
	for _, name := range cfg.IncludeNames {
		s.includeNames[name] = true
	}
	for _, name := range cfg.ExcludedNames {
		s.excludeNames[name] = true
	}
	for _, ext := range cfg.ExcludedExtensions {
		s.excludeExts[strings.ToLower(ext)] = true
	}
	return s
}

// ShouldInclude reports whether a file with the given basename is exported.
// It depends on the name alone, never on file content.
func (s *Selector) ShouldInclude(name string) bool {
	if s.excludeNames[name] {
		return false
	}
	if s.excludeExts[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	if s.includeNames[name] {
		return true
	}
	lower := strings.ToLower(name)
	for _, pattern := range s.namePatterns {
		if matched, err := doublestar.Match(pattern, lower); err == nil && matched {
			return true
		}
	}
	return false
}

// Select walks root and returns the relative paths of all qualifying files
// in canonical order: ascending by the case-insensitive form of the full
// relative path. The first traversal error aborts the walk.
func (s *Selector) Select(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if s.dirMatcher.MatchesPath(rel + "/") {
				return fs.SkipDir
			}
			return nil
		}

		if s.ShouldInclude(d.Name()) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(paths, func(i, j int) bool {
		li, lj := strings.ToLower(paths[i]), strings.ToLower(paths[j])
		if li == lj {
			return paths[i] < paths[j]
		}
		return li < lj
	})
	return paths, nil
}
