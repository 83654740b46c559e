package services

import (
	"errors"
	"sync/atomic"

	"withdrawal-report/internal/models"
)

var ErrNoDataset = errors.New("no dataset loaded")

// DatasetStore holds the most recently loaded dataset. A new upload replaces
// the previous one in a single step, so readers see either the old or the
// new dataset and never a partial one.
type DatasetStore struct {
	current atomic.Pointer[models.Dataset]
}

func NewDatasetStore() *DatasetStore {
	return &DatasetStore{}
}

// Replace installs dataset and returns the one it replaced, if any
func (s *DatasetStore) Replace(dataset *models.Dataset) *models.Dataset {
	return s.current.Swap(dataset)
}

func (s *DatasetStore) Current() (*models.Dataset, error) {
	dataset := s.current.Load()
	if dataset == nil {
		return nil, ErrNoDataset
	}
	return dataset, nil
}
