package script

import (
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
)

// StripTypes strips TypeScript-only syntax (type annotations, `as` casts,
// `interface`/`type` declarations, generic type arguments on macro calls
// like `defineProps<Props>()`) from a script-setup block so the rest of
// the pipeline only ever deals in plain JS expressions. Grounded on
// buke-esbuild-plugin-vue-go's `registerScriptHandler`, which picks
// api.LoaderTS for `lang="ts"` blocks before handing them to esbuild.
func StripTypes(source string) (string, error) {
	result := api.Transform(source, api.TransformOptions{
		Loader: api.LoaderTS,
		Target: api.ESNext,
	})
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("script: ts strip: %s", result.Errors[0].Text)
	}
	return string(result.Code), nil
}
