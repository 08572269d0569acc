package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used for job, bid and
// work record IDs.
func GenerateID() string {
	return uuid.New().String()
}
