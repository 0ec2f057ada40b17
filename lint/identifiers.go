package lint

import "regexp"

var identPattern = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*`)

// identifiers extracts candidate root identifiers from a template
// expression, skipping property-access positions (`obj.prop` only yields
// "obj"), mirroring transform's PrefixIdentifiers scan.
func identifiers(expr string) []string {
	var out []string
	for _, idx := range identPattern.FindAllStringIndex(expr, -1) {
		start := idx[0]
		if start > 0 && expr[start-1] == '.' {
			continue
		}
		out = append(out, expr[idx[0]:idx[1]])
	}
	return out
}
