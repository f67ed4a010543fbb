package md2html

import "sort"

// ResolvedExtensions is the final extension set for one conversion: the
// active canonical names plus the per-name configuration. Every active name
// has a configuration entry (possibly empty). Configs may also carry
// entries for names that were configured and later subtracted, such as the
// math configuration left behind after remove_extra.
type ResolvedExtensions struct {
	Names   map[string]struct{}
	Configs map[string]ExtensionConfig
}

// newResolvedExtensions returns the baseline accumulator. The extras bundle
// and the math extension are active before any token is seen, so tables,
// definition lists, footnotes and display math work without opt-in.
func newResolvedExtensions() *ResolvedExtensions {
	return &ResolvedExtensions{
		Names: map[string]struct{}{
			ExtExtra: {},
			ExtMath:  {},
		},
		Configs: map[string]ExtensionConfig{
			ExtExtra: {},
			ExtMath:  {},
		},
	}
}

// Active reports whether a canonical name is in the final set.
func (r *ResolvedExtensions) Active(canonicalName string) bool {
	_, ok := r.Names[canonicalName]
	return ok
}

// Config returns the configuration recorded for a canonical name, which may
// be nil for names never configured.
func (r *ResolvedExtensions) Config(canonicalName string) ExtensionConfig {
	return r.Configs[canonicalName]
}

// clone deep-copies the set so per-document tokens never mutate the
// instance-level portion.
func (r *ResolvedExtensions) clone() *ResolvedExtensions {
	out := &ResolvedExtensions{
		Names:   make(map[string]struct{}, len(r.Names)),
		Configs: make(map[string]ExtensionConfig, len(r.Configs)),
	}
	for name := range r.Names {
		out.Names[name] = struct{}{}
	}
	for name, cfg := range r.Configs {
		copied := make(ExtensionConfig, len(cfg))
		for k, v := range cfg {
			copied[k] = v
		}
		out.Configs[name] = copied
	}
	return out
}

// sortedNames returns the active names in lexical order so engine assembly
// is deterministic.
func (r *ResolvedExtensions) sortedNames() []string {
	names := make([]string, 0, len(r.Names))
	for name := range r.Names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
