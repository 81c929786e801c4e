package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/ctree/gomap"
	"github.com/signadot/ctree/parse"
)

// SetArg sets a variable from an argument of the form path=value, where
// path is dot separated and value is YAML. Intermediate mappings are
// created as needed.
func (env Env) SetArg(a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return fmt.Errorf("argument %q expected key=val", a)
	}
	var v any = ""
	if val != "" {
		if err := gomap.FromText([]byte(val), &v, gomap.WithParseOptions(parse.ParseYAML())); err != nil {
			return fmt.Errorf("argument %q: %w", a, err)
		}
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
