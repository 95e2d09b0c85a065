package util

import (
	"github.com/google/uuid"
)

// NewRunID returns a unique ID used to tie together the log lines of a single run
func NewRunID() string {
	return uuid.New().String()
}
