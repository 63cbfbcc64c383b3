package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Parse decodes a single YAML config document (text), resolves its
// extends chain through env, and returns the merged-but-not-yet-finalized
// LintConfig. baseDir anchors extends/ignore-from-file path resolution.
// Grounded on the teacher's loader (internal/config/config.go Load/
// loadWithVisited), generalized from a single-file walk into the full
// extends-merge-finalize pipeline described for yamllint documents.
func Parse(text string, env Env, baseDir string) (*LintConfig, error) {
	return parseDocument(text, env, baseDir, map[string]bool{})
}

func parseDocument(text string, env Env, baseDir string, visited map[string]bool) (*LintConfig, error) {
	root, err := decodeMapping(text)
	if err != nil {
		return nil, err
	}

	cfg := newLintConfig(baseDir)

	if extendsNode := mappingLookup(root, "extends"); extendsNode != nil {
		entries, err := decodeExtendsEntries(extendsNode)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry == "" {
				continue // open question: empty extends entries are a no-op
			}
			parent, err := resolveExtendsEntry(entry, env, baseDir, visited)
			if err != nil {
				return nil, err
			}
			if err := mergeInto(cfg, parent); err != nil {
				return nil, err
			}
		}
	}

	ignoreNode := mappingLookup(root, "ignore")
	ignoreFromFileNode := mappingLookup(root, "ignore-from-file")
	if ignoreNode != nil && ignoreFromFileNode != nil {
		return nil, fmt.Errorf("invalid config: ignore and ignore-from-file keys cannot be used together")
	}
	if ignoreNode != nil {
		patterns, err := decodeIgnoreField(ignoreNode)
		if err != nil {
			return nil, err
		}
		// 'ignore' and 'ignore-from-file' are independent slots in the
		// merged config: setting one in this document does not clear
		// whatever an ancestor in the extends chain set for the other,
		// only the mutual-exclusion-within-one-document check above.
		cfg.IgnorePatterns = patterns
	}
	if ignoreFromFileNode != nil {
		files, err := decodeStringListField(ignoreFromFileNode,
			"invalid config: ignore-from-file should contain filename(s), either as a list or string")
		if err != nil {
			return nil, err
		}
		cfg.IgnoreFromFiles = files
	}

	if yamlFilesNode := mappingLookup(root, "yaml-files"); yamlFilesNode != nil {
		patterns, err := decodeSeqOfStrings(yamlFilesNode,
			"invalid config: yaml-files should be a list of file patterns")
		if err != nil {
			return nil, err
		}
		cfg.YAMLFilePatterns = patterns
	}

	if localeNode := mappingLookup(root, "locale"); localeNode != nil {
		if localeNode.Kind == yaml.ScalarNode {
			if s := localeNode.Value; s != "" {
				cfg.Locale = s
			}
		}
	}

	if rulesNode := mappingLookup(root, "rules"); rulesNode != nil {
		if err := mergeRules(cfg, rulesNode); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func decodeMapping(text string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if len(doc.Content) == 0 {
		// Empty document: treat as an empty mapping.
		return &yaml.Node{Kind: yaml.MappingNode}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("invalid config: not a mapping")
	}
	return root, nil
}

// mappingLookup finds the value node for key within a MappingNode,
// returning nil if absent. Content alternates key, value pairs.
func mappingLookup(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		if k.Kind == yaml.ScalarNode && k.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func decodeExtendsEntries(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		var out []string
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				out = append(out, item.Value)
			}
			// non-string entries in a sequence are silently skipped
		}
		return out, nil
	default:
		return nil, fmt.Errorf("invalid config: extends should be a string or a list of strings")
	}
}

func resolveExtendsEntry(entry string, env Env, baseDir string, visited map[string]bool) (*LintConfig, error) {
	if preset, ok := builtinPresets[entry]; ok {
		return parseDocument(preset, env, baseDir, visited)
	}
	if env == nil {
		return nil, fmt.Errorf("invalid config: extends %q requires filesystem access for resolution", entry)
	}
	resolved := ResolveExtendsPath(entry, env, baseDir)
	canonical := resolved
	if visited[canonical] {
		return newLintConfig(baseDir), nil // cycle: re-entry is a no-op
	}
	visited[canonical] = true

	data, err := env.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("invalid config: could not read extends target %q: %w", entry, err)
	}
	return parseDocument(string(data), env, filepath.Dir(resolved), visited)
}

// ResolveExtendsPath implements the §4.2 lookup order for an extends
// entry: absolute as-is, else base_dir/entry if it exists, else
// cwd/entry if it exists, else the bare relative path.
func ResolveExtendsPath(entry string, env Env, baseDir string) string {
	if filepath.IsAbs(entry) {
		return entry
	}
	if baseDir != "" {
		candidate := filepath.Join(baseDir, entry)
		if env != nil && env.FileExists(candidate) {
			return candidate
		}
	}
	if env != nil {
		if cwd, err := env.Getwd(); err == nil {
			candidate := filepath.Join(cwd, entry)
			if env.FileExists(candidate) {
				return candidate
			}
		}
	}
	return entry
}

func mergeInto(dst, src *LintConfig) error {
	if len(src.IgnorePatterns) > 0 {
		dst.IgnorePatterns = src.IgnorePatterns
	}
	if len(src.IgnoreFromFiles) > 0 {
		dst.IgnoreFromFiles = src.IgnoreFromFiles
	}
	if len(src.YAMLFilePatterns) > 0 && !sameStrings(src.YAMLFilePatterns, defaultYAMLFilePatterns) {
		dst.YAMLFilePatterns = src.YAMLFilePatterns
	}
	if dst.Locale == "" && src.Locale != "" {
		dst.Locale = src.Locale
	}
	for _, name := range src.RuleNames {
		if _, ok := dst.ruleValues[name]; !ok {
			dst.RuleNames = append(dst.RuleNames, name)
		}
		merged, err := mergeRuleValue(dst.ruleValues[name], src.ruleValues[name])
		if err != nil {
			return err
		}
		dst.ruleValues[name] = merged
	}
	return nil
}

func mergeRuleValue(dst, src interface{}) (interface{}, error) {
	if dst == nil {
		return src, nil
	}
	dstMap, dstIsMap := dst.(map[string]interface{})
	srcMap, srcIsMap := src.(map[string]interface{})
	if dstIsMap && srcIsMap {
		cloned := cloneMap(dstMap)
		if err := mergo.Merge(&cloned, srcMap, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cloned, nil
	}
	// Scalars/sequences, or a mapping vs. a bare enable/disable: the
	// current document's value replaces wholesale.
	return src, nil
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mergeRules(cfg *LintConfig, rulesNode *yaml.Node) error {
	if rulesNode.Kind != yaml.MappingNode {
		return fmt.Errorf("invalid config: rules should be a mapping")
	}
	for i := 0; i+1 < len(rulesNode.Content); i += 2 {
		keyNode := rulesNode.Content[i]
		valNode := rulesNode.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			continue // non-string rule ids are skipped
		}
		name := keyNode.Value

		value, err := decodeRuleValue(name, valNode)
		if err != nil {
			return err
		}
		if m, ok := value.(map[string]interface{}); ok {
			if err := validateRuleOptions(name, m); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
		}

		if _, seen := cfg.ruleValues[name]; !seen {
			cfg.RuleNames = append(cfg.RuleNames, name)
		}
		merged, err := mergeRuleValue(cfg.ruleValues[name], value)
		if err != nil {
			return err
		}
		cfg.ruleValues[name] = merged
	}
	return nil
}

func decodeRuleValue(name string, node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "enable" || node.Value == "disable" {
			return node.Value, nil
		}
		return nil, fmt.Errorf("invalid config: rule '%s' should be 'enable', 'disable', or a mapping", name)
	case yaml.MappingNode:
		options := map[string]interface{}{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := node.Content[i]
			v := node.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			decoded, err := decodeScalarOrNested(v)
			if err != nil {
				return nil, err
			}
			if k.Value == "level" {
				lvl, ok := decoded.(string)
				if !ok || (lvl != "error" && lvl != "warning") {
					return nil, fmt.Errorf(`invalid config: rule '%s' level should be "error" or "warning"`, name)
				}
			}
			options[k.Value] = decoded
		}
		return options, nil
	default:
		return nil, fmt.Errorf("invalid config: rule '%s' should be 'enable', 'disable', or a mapping", name)
	}
}

// decodeScalarOrNested decodes a YAML node into plain Go values (string,
// bool, int64, []interface{}, map[string]interface{}) without relying on
// yaml.Node.Decode's type inference quirks for untyped interfaces.
func decodeScalarOrNested(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var v interface{}
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		if i, ok := v.(int); ok {
			return int64(i), nil
		}
		return v, nil
	case yaml.SequenceNode:
		out := make([]interface{}, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeScalarOrNested(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := map[string]interface{}{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := node.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			v, err := decodeScalarOrNested(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[k.Value] = v
		}
		return out, nil
	default:
		var v interface{}
		_ = node.Decode(&v)
		return v, nil
	}
}

func decodeIgnoreField(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return splitPlainLines(node.Value), nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("invalid config: ignore should contain file patterns")
			}
			out = append(out, item.Value)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("invalid config: ignore should contain file patterns")
	}
}

// splitPlainLines implements the "ignore" key's multiline-string form:
// split on lines, strip a trailing \r, drop blank lines. Unlike
// ignore-from-file contents this is not gitignore file syntax, so "#"
// lines are ordinary patterns, not comments.
func splitPlainLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func decodeStringListField(node *yaml.Node, errMsg string) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s", errMsg)
			}
			out = append(out, item.Value)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s", errMsg)
	}
}

func decodeSeqOfStrings(node *yaml.Node, errMsg string) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s", errMsg)
	}
	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s", errMsg)
		}
		out = append(out, item.Value)
	}
	return out, nil
}

// decodeStringListValue normalizes a decoded (non-Node) value — as found
// inside an already-decoded rule options map — into a []string, accepting
// either a single string or a list of strings.
func decodeStringListValue(v interface{}) ([]string, error) {
	switch t := v.(type) {
	case string:
		return splitPlainLines(t), nil
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("should contain file patterns")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("should contain file patterns")
	}
}
