package lsp

import (
	"fmt"
	"strings"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/sfc"
)

// buildVirtualTS synthesizes a TypeScript source for desc (spec.md §4.J:
// "script-setup body with a synthesized render context block"), so
// script-identifier requests (hover/completion/definition) can be
// forwarded to an external TS server that only understands plain .ts
// files, not .vize SFCs.
func buildVirtualTS(desc *sfc.Descriptor, m *croquis.Model) string {
	var sb strings.Builder
	if desc.ScriptSetupBlock != nil {
		sb.WriteString(desc.ScriptSetupBlock.Content)
		sb.WriteString("\n")
	} else if desc.ScriptBlock != nil {
		sb.WriteString(desc.ScriptBlock.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("// --- synthesized render context ---\n")
	sb.WriteString("declare const _ctx: {\n")
	for name, b := range m.Bindings {
		sb.WriteString(fmt.Sprintf("  %s: unknown // %s\n", name, b.Type))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// VirtualOffset maps a byte offset in the synthesized TS text produced by
// buildVirtualTS back to the corresponding SFC offset. The synthesized
// source is a prefix-copy of the setup/script block's own content followed
// by generated boilerplate, so any offset inside the copied prefix maps
// 1:1; offsets inside the generated tail have no SFC counterpart.
func VirtualOffset(desc *sfc.Descriptor, text string, virtualOffset int) (int, bool) {
	block := desc.ScriptSetupBlock
	if block == nil {
		block = desc.ScriptBlock
	}
	if block == nil || virtualOffset < 0 || virtualOffset > len(block.Content) {
		return 0, false
	}
	return blockContentStart(text, block) + virtualOffset, true
}
