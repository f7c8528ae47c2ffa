package model

// Level problem parameters used by the built-in level dataset.
const (
	DefaultLevelN      = 2
	DefaultLevelFindID = 1
)

// MutualDataset returns the built-in mutual followers dataset.
func MutualDataset() []User {
	return []User{
		{ID: 1, Name: "Alice", Follows: []int{2, 3}},
		{ID: 2, Name: "Bob", Follows: []int{1}},
		{ID: 3, Name: "Charlie", Follows: []int{4}},
		{ID: 4, Name: "David", Follows: []int{3}},
	}
}

// LevelDataset returns the built-in nth level followers dataset.
func LevelDataset() []User {
	return []User{
		{ID: 1, Name: "Alice", Follows: []int{2, 3}},
		{ID: 2, Name: "Bob", Follows: []int{4}},
		{ID: 3, Name: "Charlie", Follows: []int{4, 5}},
		{ID: 4, Name: "David", Follows: []int{6}},
		{ID: 5, Name: "Eva", Follows: []int{6}},
		{ID: 6, Name: "Frank", Follows: []int{}},
	}
}

// BuiltinDataset returns the built-in dataset for a problem type.
func BuiltinDataset(p ProblemType) *DatasetFile {
	if p == ProblemMutual {
		return &DatasetFile{Problem: ProblemMutual, Users: MutualDataset()}
	}
	return &DatasetFile{
		Problem: ProblemLevel,
		N:       DefaultLevelN,
		FindID:  DefaultLevelFindID,
		Users:   LevelDataset(),
	}
}
