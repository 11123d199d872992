package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

var tinPattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidTIN reports whether s is a well-formed 10-digit taxpayer
// identification number.
func ValidTIN(s string) bool {
	return tinPattern.MatchString(s)
}

// GenerateDocumentRef generates a unique document reference number
func GenerateDocumentRef() string {
	return "DOC-" + strings.ToUpper(uuid.New().String()[:8])
}
