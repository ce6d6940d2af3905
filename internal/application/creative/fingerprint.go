package creative

import (
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"

	"adcraft/internal/domain/concept"
)

// Fingerprint returns a stable digest of the concept. Equal concepts always
// share a fingerprint, so a preview can skip re-rendering unchanged output.
func Fingerprint(c *concept.AdConcept) string {
	data, err := json.Marshal(c)
	if err != nil {
		// AdConcept holds only strings and string slices.
		panic(fmt.Sprintf("creative: cannot encode concept: %v", err))
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
