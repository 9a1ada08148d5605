package utils

import (
	"fmt"
	"time"
)

// BuildArtifactFilename builds the upload filename for a captured artifact
// following the pattern: {mockup|hd}-{ref}-{timestampMillis}.png
// The timestamp component guarantees uniqueness across repeated captures of
// the same customization during a session.
func BuildArtifactFilename(kind, ref string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d.png", kind, ref, at.UnixMilli())
}
