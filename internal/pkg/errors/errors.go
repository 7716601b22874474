package errors

import (
	"errors"
)

var (
	ErrWriteTranscript   = errors.New("failed writing transcript")
	ErrNoRateChangeFound = errors.New("no rate change found")
)
