// Package storage provides file system access for fg: the user config file
// and dataset files.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jacksmith/followgraph/internal/model"
)

// datasetExt is the extension added to dataset names given without one.
const datasetExt = ".yaml"

// Storage provides access to a working directory.
type Storage struct {
	root string // directory holding .fgconfig.yaml and dataset files
}

// Open returns a Storage for the given directory.
// Returns error if dir does not exist or is not a directory.
func Open(dir string) (*Storage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s not found", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	return &Storage{root: dir}, nil
}

// Root returns the storage root directory.
func (s *Storage) Root() string {
	return s.root
}

// DatasetPath resolves a dataset name or path. Relative paths are relative
// to the root; a name without an extension gets ".yaml".
func (s *Storage) DatasetPath(name string) string {
	if filepath.Ext(name) == "" {
		name += datasetExt
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.root, name)
}

// LoadDataset loads a dataset by name or path.
func (s *Storage) LoadDataset(name string) (*model.DatasetFile, error) {
	path := s.DatasetPath(name)

	// Check if file exists first to give a clearer error message
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset %q not found", name)
		}
		return nil, fmt.Errorf("failed to access dataset file: %w", err)
	}

	return model.LoadDataset(path)
}

// SaveDataset writes a dataset by name or path.
func (s *Storage) SaveDataset(name string, df *model.DatasetFile) error {
	return model.SaveDataset(s.DatasetPath(name), df)
}

// DatasetExists checks if a dataset file is present.
func (s *Storage) DatasetExists(name string) bool {
	_, err := os.Stat(s.DatasetPath(name))
	return err == nil
}

// ListDatasets returns the names of dataset files in the root, sorted.
// Only .yaml and .yml files that parse as non-empty datasets are listed;
// the config file is skipped.
func (s *Storage) ListDatasets() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.root, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == userConfigFile {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		df, err := model.LoadDataset(filepath.Join(s.root, entry.Name()))
		if err != nil || len(df.Users) == 0 {
			continue // Skip files that aren't datasets
		}
		names = append(names, strings.TrimSuffix(entry.Name(), datasetExt))
	}

	sort.Strings(names)
	return names, nil
}
