package uid

import "github.com/google/uuid"

// New generates a new unique identifier.
func New() string {
	return uuid.New().String()
}

// Reuse returns id when it is a valid UUID, otherwise a freshly generated one.
func Reuse(id string) string {
	if _, err := uuid.Parse(id); err == nil {
		return id
	}
	return New()
}
