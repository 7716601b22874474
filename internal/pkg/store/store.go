// Package store provides data persistence interfaces and implementations.
//
//go:generate go run -mod=mod github.com/matryer/moq -out storemock/store_mock.go -pkg storemock . Store
package store

import "github.com/yama6a/shared-rate/internal/pkg/model"

// Store defines the interface for keeping the history of shared rate changes.
type Store interface {
	RecordRateChange(change model.RateChange) error
	GetRateChanges() ([]model.RateChange, error)
}
