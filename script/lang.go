// Package script implements the embedded JS/TS mini-parser (spec.md §4.D):
// it walks a <script>/<script setup> block's top-level statements and
// inner functions to populate a croquis.Model. It is deliberately not a
// general static analyzer — only the behaviors spec.md §4.D enumerates
// are in scope.
//
// Grounded on viant-linager's analyzer/identifier.go: the same
// recursive-stack tree-sitter walk (switch over node.Type(), stack-based
// traversal, ChildByFieldName lookups) drives the helpers in walk.go, generalized from Go
// source to JS/TS source. TypeScript syntax stripping is grounded on
// buke-esbuild-plugin-vue-go's use of github.com/evanw/esbuild's pkg/api.
package script

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// languageFor selects the tree-sitter grammar for a script block, keyed by
// its `lang` attribute (spec.md §6: SFC blocks recognize `lang`).
func languageFor(lang string) *sitter.Language {
	switch lang {
	case "ts", "tsx":
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// parseSource parses source with the grammar selected by lang, returning
// the resulting tree. Parsing is synchronous and single-threaded per
// component (spec.md §5); callers own the *sitter.Tree and must Close it.
func parseSource(source, lang string) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(lang))
	return parser.ParseCtx(nil, nil, []byte(source))
}
