package config

// ReplaceMerge merges override on top of base and returns the result as a new tree.
//
// Keys present on only one side are kept. When a key is present on both sides and
// both values are mappings, they are merged recursively; otherwise the override value
// replaces the base value. Sequences are replaced whole. Neither input is modified.
func ReplaceMerge(base, override map[string]any) map[string]any {
	merged := cloneMap(base)
	if merged == nil {
		merged = make(map[string]any, len(override))
	}

	for key, overrideVal := range override {
		baseMap, baseIsMap := merged[key].(map[string]any)
		overrideMap, overrideIsMap := overrideVal.(map[string]any)

		if baseIsMap && overrideIsMap {
			merged[key] = ReplaceMerge(baseMap, overrideMap)

			continue
		}

		merged[key] = cloneValue(overrideVal)
	}

	return merged
}

func cloneValue(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		return cloneSlice(typed)
	default:
		return val
	}
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for key, val := range src {
		dst[key] = cloneValue(val)
	}

	return dst
}

func cloneSlice(src []any) []any {
	if src == nil {
		return nil
	}

	dst := make([]any, len(src))
	for i, val := range src {
		dst[i] = cloneValue(val)
	}

	return dst
}
