package utils

import (
	"github.com/google/uuid"
)

// GenerateStorageName returns the on-disk name for an uploaded file: a
// random uuid prefix keeps concurrent uploads of the same display name from
// colliding inside one tender directory.
func GenerateStorageName(fileName string) string {
	return uuid.New().String() + "_" + fileName
}
