package submission

import (
	"strconv"
	"time"

	"github.com/pacam/formrelay/pkg/id"
)

const (
	referenceBrand     = "PACAM"
	referenceSuffixLen = 6
)

// GenerateReference returns PACAM-<tag>-<millis>. The same inputs always give
// the same id, so two submissions of one kind in the same millisecond collide.
func GenerateReference(tag string, millis int64) string {
	return referenceBrand + "-" + tag + "-" + strconv.FormatInt(millis, 10)
}

// newReference stamps a reference at t, optionally followed by a random suffix.
func newReference(tag string, t time.Time, unique bool) string {
	ref := GenerateReference(tag, t.UnixMilli())
	if unique {
		ref += "-" + id.NewSuffix(referenceSuffixLen)
	}
	return ref
}
