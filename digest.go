package dataobject

import (
	"crypto/sha256"
	"hash"
	"strings"

	"github.com/lord-saumagen/DataObjectExtension/scalar"
)

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching. Package consumers can override NewHash with
// their own hash.Hash constructor; the default is SHA-256, so digests
// are 32 bytes and collision-resistant enough to stand in for full
// value comparison.
var NewHash = func() hash.Hash {
	return sha256.New()
}

// tokenSeparator terminates every property token in the canonical
// accumulator string.
const tokenSeparator = "|"

// digester renders an ordered sequence of logical property values into
// the canonical accumulator string and reduces it to a digest.
type digester struct {
	acc strings.Builder
}

func (d *digester) add(value any) {
	d.acc.WriteString(scalar.Format(value))
	d.acc.WriteString(tokenSeparator)
}

func (d *digester) sum() []byte {
	h := NewHash()
	h.Write([]byte(d.acc.String()))

	return h.Sum(nil)
}
