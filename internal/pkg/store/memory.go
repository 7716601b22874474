package store

import (
	"github.com/yama6a/shared-rate/internal/pkg/errors"
	"github.com/yama6a/shared-rate/internal/pkg/model"
	"go.uber.org/zap"
)

var _ Store = &MemoryStore{}

// MemoryStore keeps rate changes in insertion order. It is not safe for concurrent use.
type MemoryStore struct {
	logger *zap.Logger
	data   []model.RateChange
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		logger: logger,
		data:   []model.RateChange{},
	}
}

func (s *MemoryStore) RecordRateChange(change model.RateChange) error {
	s.logger.Debug("recording RateChange", zap.Any("rateChange", change))
	s.data = append(s.data, change)

	return nil
}

func (s *MemoryStore) GetRateChanges() ([]model.RateChange, error) {
	out := make([]model.RateChange, len(s.data))
	copy(out, s.data)

	return out, nil
}

func (s *MemoryStore) LatestRateChange() (model.RateChange, error) {
	if len(s.data) == 0 {
		return model.RateChange{}, errors.ErrNoRateChangeFound
	}

	return s.data[len(s.data)-1], nil
}
