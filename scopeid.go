package vize

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ScopeID derives a stable 8-hex-digit scope id from filename (spec.md
// §4.H step 2), grounded on buke-esbuild-plugin-vue-go's generateHashId
// (xxhash.Sum64String, formatted base-16) but hashing the filename rather
// than the full source so the id survives template-only edits, matching
// spec.md's "stable scope_id from the filename" wording.
func ScopeID(filename string) string {
	sum := xxhash.Sum64String(filename)
	return fmt.Sprintf("%08x", uint32(sum))
}
