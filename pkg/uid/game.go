package uid

import (
	"encoding/hex"

	"lukechampine.com/frand"
)

// GenerateGameID returns a random 128-bit game ID as hex.
func GenerateGameID() string {
	id := frand.Entropy128()
	return hex.EncodeToString(id[:])
}
