package model

import (
	"time"
)

type Owner string

// RateChange is one raise of the shared interest rate.
type RateChange struct {
	Previous  float64   `json:"previous"`
	Increment float64   `json:"increment"`
	Current   float64   `json:"current"`
	ChangedAt time.Time `json:"changedAt"`
}

type DailyReturn struct {
	Owner  Owner   `json:"owner"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
	Return float64 `json:"return"`
}
