package store

import "github.com/google/uuid"

const (
	eventIDPrefix   = "evt"
	bookingIDPrefix = "book"
)

// newTimeOrderedID returns prefix_<uuidv7>. UUIDv7 sorts by creation
// time and stays unique within the same millisecond.
func newTimeOrderedID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "_" + id.String()
}
