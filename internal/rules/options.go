package rules

import "fmt"

// Small helpers for reading a rule's resolved options mapping with a
// default fallback for absent keys, per "Config::resolve reads ONLY the
// options mapping for its rule id and applies defaults for absent keys."

func optBool(opts map[string]interface{}, key string, def bool) bool {
	if v, ok := opts[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func optInt(opts map[string]interface{}, key string, def int) int {
	if v, ok := opts[key]; ok {
		switch n := v.(type) {
		case int64:
			return int(n)
		case int:
			return n
		}
	}
	return def
}

func optString(opts map[string]interface{}, key string, def string) string {
	if v, ok := opts[key]; ok {
		switch s := v.(type) {
		case string:
			return s
		case bool, int, int64, uint64:
			return fmt.Sprint(s)
		}
	}
	return def
}

func optStringSlice(opts map[string]interface{}, key string, def []string) []string {
	v, ok := opts[key]
	if !ok {
		return def
	}
	seq, ok := v.([]interface{})
	if !ok {
		return def
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func resolveOptions(cfg interface {
	RuleOptions(string) (map[string]interface{}, bool)
}, id string) map[string]interface{} {
	opts, ok := cfg.RuleOptions(id)
	if !ok {
		return map[string]interface{}{}
	}
	return opts
}
