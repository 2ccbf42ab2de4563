package uid

import "github.com/google/uuid"

// GenerateMatchID returns a random ID used to tag a match in the logs.
func GenerateMatchID() string {
	return uuid.NewString()
}
