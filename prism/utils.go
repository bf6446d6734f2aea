package prism

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// resultID derives the deterministic result identifier from the inputs that
// define an analysis: the fundamental, the tuning, and the engine version.
// Equal inputs always hash to equal IDs.
func resultID(f0 float64, tuningID string) string {
	data := fmt.Sprintf("%.9f|%s|%s", f0, tuningID, EngineVersion)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])[:16]
}
