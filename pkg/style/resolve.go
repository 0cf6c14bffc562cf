package style

import "fmt"

// Entry is a single request key/value pair.
type Entry struct {
	Key   string
	Value any
}

// Request is an ordered sequence of styling intents. Order matters: when two
// entries derive the same low-level option, the later entry wins.
type Request []Entry

// Config is a fully resolved, flat map of low-level option name to value.
// It is the only artifact that crosses into the rendering layer.
type Config map[string]any

// Resolve expands an ordered request of high-level intents into a Config.
//
// Request keys fall into three classes: passthrough keys (recognized
// low-level option names, applied verbatim with top precedence), meta keys
// (the reserved charta.* post-processing controls), and family keys, which
// are looked up in the registry as family.common plus family.<value>.
//
// Resolution is a pure function of the request and the registry; resolving
// the same request twice yields identical output.
func (r *Registry) Resolve(req Request) (Config, error) {
	acc := Config{}
	var passthrough []Entry
	meta := map[string]any{}

	for _, e := range req {
		switch {
		case IsMetaKey(e.Key):
			meta[e.Key] = e.Value
		case IsParam(e.Key):
			passthrough = append(passthrough, e)
		default:
			if frag, ok := r.Lookup(e.Key + "." + commonName); ok {
				mergeFragment(acc, frag)
			}
			name := fmt.Sprintf("%s.%v", e.Key, e.Value)
			frag, ok := r.Lookup(name)
			if !ok {
				return nil, &InvalidOptionValueError{Key: e.Key, Value: e.Value}
			}
			mergeFragment(acc, frag)
		}
	}

	// Explicit low-level overrides always win over derived options.
	for _, e := range passthrough {
		acc[e.Key] = e.Value
	}

	if truthy(meta[KeyTex]) {
		if frag, ok := r.Lookup(KeyTex); ok {
			mergeFragment(acc, frag)
		}
	}

	if truthy(meta[KeyWide]) {
		if wide, ok := acc["figure.widefigsize"]; ok {
			if _, ok := acc["figure.figsize"]; ok {
				acc["figure.figsize"] = wide
			}
		}
	}

	if v, ok := meta[KeySquare]; ok {
		idx, ok := squareIndex(v)
		if !ok {
			return nil, &InvalidSquareIndexError{Value: v}
		}
		if size, ok := sizePair(acc["figure.figsize"]); ok {
			acc["figure.figsize"] = [2]float64{size[idx], size[idx]}
		}
	}

	// Append the explicit charta.tex.preamble text after any fragment-derived
	// preamble. The option is only set when a fragment, a passthrough, or the
	// meta key touched it.
	fragPre, fragSet := acc[preambleKey]
	extra, extraSet := meta[KeyTexPreamble]
	if fragSet || extraSet {
		acc[preambleKey] = asString(fragPre) + asString(extra)
	}

	for _, key := range weedKeys {
		delete(acc, key)
	}

	return acc, nil
}

// preambleKey is the low-level option holding the typeset preamble text.
const preambleKey = "text.latex.preamble"

// mergeFragment merges frag into acc with last-write-wins semantics. The
// preamble option is the one exception: fragment-contributed preamble text
// accumulates by concatenation, in merge order, so that several font or
// profile fragments can each add packages.
func mergeFragment(acc Config, frag Fragment) {
	for k, v := range frag {
		if k == preambleKey {
			if prev, ok := acc[k]; ok {
				acc[k] = asString(prev) + asString(v)
				continue
			}
		}
		acc[k] = v
	}
}

// truthy interprets a meta key value as a switch. Booleans and nonzero
// numbers enable; everything else, including absence, does not.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return false
	}
}

// squareIndex normalizes a square-layout value to a size tuple index.
func squareIndex(v any) (int, bool) {
	var idx int
	switch t := v.(type) {
	case int:
		idx = t
	case int64:
		idx = int(t)
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		idx = int(t)
	default:
		return 0, false
	}
	if idx != 0 && idx != 1 {
		return 0, false
	}
	return idx, true
}

// sizePair normalizes the figure size value to a width/height pair. YAML
// decoding hands the resolver []any; fragments store [2]float64.
func sizePair(v any) ([2]float64, bool) {
	switch t := v.(type) {
	case [2]float64:
		return t, true
	case []float64:
		if len(t) == 2 {
			return [2]float64{t[0], t[1]}, true
		}
	case []any:
		if len(t) == 2 {
			w, wok := asFloat(t[0])
			h, hok := asFloat(t[1])
			if wok && hok {
				return [2]float64{w, h}, true
			}
		}
	}
	return [2]float64{}, false
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
