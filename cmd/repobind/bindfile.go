package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const bindFileName = ".repobind"

// bindFile is the optional per-repository dotfile. It only overrides the
// document's cover metadata; the selection lists are fixed.
type bindFile struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type documentMeta struct {
	title    string
	subtitle string
}

const defaultSubtitle = "Complete Repository Source Code"

// loadDocumentMeta resolves the title page metadata for root. Defaults are
// the root directory's name and a fixed subtitle; a .repobind file at the
// root may override either field.
func loadDocumentMeta(root string) (documentMeta, error) {
	meta := documentMeta{subtitle: defaultSubtitle}
	if abs, err := filepath.Abs(root); err == nil {
		meta.title = filepath.Base(abs)
	} else {
		meta.title = filepath.Base(root)
	}

	path := filepath.Join(root, bindFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return documentMeta{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg bindFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return documentMeta{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Title != "" {
		meta.title = cfg.Title
	}
	if cfg.Subtitle != "" {
		meta.subtitle = cfg.Subtitle
	}
	return meta, nil
}
