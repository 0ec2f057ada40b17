package lsp

import (
	"strings"

	"github.com/vizehq/vize/sfc"
)

// blockContentStart returns the absolute SFC offset where b.Content begins.
// sfc.Block.Loc.Span covers the whole tag (opening tag through closing
// tag), not just its Content — the splitter doesn't separately expose a
// content-start offset — so this locates Content within the block's own
// span, which is exact for any non-pathological SFC (Content can't recur
// earlier in its own tag's markup).
func blockContentStart(text string, b *sfc.Block) int {
	lo, hi := b.Loc.Span.Start, b.Loc.Span.End
	if hi > len(text) {
		hi = len(text)
	}
	if idx := strings.Index(text[lo:hi], b.Content); idx >= 0 {
		return lo + idx
	}
	return lo
}
