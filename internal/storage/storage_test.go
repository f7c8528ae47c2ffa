package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/followgraph/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, s.Root())
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("file instead of directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := Open(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})
}

func TestDatasetPath(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "level.yaml"), s.DatasetPath("level"))
	assert.Equal(t, filepath.Join(dir, "level.yml"), s.DatasetPath("level.yml"))
	assert.Equal(t, "/abs/g.yaml", s.DatasetPath("/abs/g.yaml"))
}

func TestSaveAndLoadDataset(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	df := model.BuiltinDataset(model.ProblemMutual)
	require.NoError(t, s.SaveDataset("mutual", df))
	assert.True(t, s.DatasetExists("mutual"))

	loaded, err := s.LoadDataset("mutual")
	require.NoError(t, err)
	assert.Equal(t, df, loaded)
}

func TestLoadDataset_NotFound(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = s.LoadDataset("missing")
	require.Error(t, err)
	assert.Equal(t, `dataset "missing" not found`, err.Error())
	assert.False(t, s.DatasetExists("missing"))
}

func TestListDatasets(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.SaveDataset("b-level", model.BuiltinDataset(model.ProblemLevel)))
	require.NoError(t, s.SaveDataset("a-mutual", model.BuiltinDataset(model.ProblemMutual)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fgconfig.yaml"), []byte("log_level: info\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("users: [\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0755))

	names, err := s.ListDatasets()
	require.NoError(t, err)
	assert.Equal(t, []string{"a-mutual", "b-level"}, names)
}
