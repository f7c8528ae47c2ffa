package ops

import (
	"github.com/jacksmith/followgraph/internal/challenge"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/jacksmith/followgraph/internal/storage"
)

// Store defines the file access required by operations.
// The concrete implementation is storage.Storage.
type Store interface {
	LoadDataset(name string) (*model.DatasetFile, error)
	SaveDataset(name string, df *model.DatasetFile) error
	ListDatasets() ([]string, error)
	LoadConfig() (*storage.Config, error)
}

// LoadProblem loads a dataset file and wraps it in its problem variant.
func LoadProblem(s Store, name string) (challenge.Problem, error) {
	df, err := s.LoadDataset(name)
	if err != nil {
		return nil, err
	}
	return challenge.FromDataset(df)
}

// DumpBuiltin writes the built-in dataset for p under name so it can be
// edited and loaded back with LoadProblem.
func DumpBuiltin(s Store, name string, p model.ProblemType) error {
	return s.SaveDataset(name, model.BuiltinDataset(p))
}
