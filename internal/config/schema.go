package config

import "fmt"

// OptionKind enumerates the value shapes a rule's option can take. The
// schema DSL mirrors the teacher's registry-of-factories pattern
// (internal/rules/registry.go's Register/Get) but for declarative option
// shapes instead of rule constructors.
type OptionKind int

const (
	OptBool OptionKind = iota
	OptInt
	OptString
	OptEnum
	OptSeqEnum
	OptSeqString
)

// OptionSpec describes one accepted key inside a rule's options mapping.
type OptionSpec struct {
	Kind OptionKind
	Enum []string // valid values for OptEnum / elements of OptSeqEnum
}

// Schema is the full set of options a rule accepts, keyed by option name.
// The "level" and "ignore" keys are accepted implicitly by every rule and
// must not be listed here.
type Schema map[string]OptionSpec

var schemaRegistry = map[string]Schema{}

// RegisterSchema associates a rule id with its option schema. Rule
// packages call this from an init() function, the same way the teacher's
// rule files call registry.Register for constructors; config deliberately
// never imports the rules package, so validation is wired through this
// registry instead of a direct dependency.
func RegisterSchema(ruleID string, schema Schema) {
	schemaRegistry[ruleID] = schema
}

// validateRuleOptions checks an options mapping against the schema
// registered for ruleID. A rule with no registered schema accepts any
// options unchecked (used for option-less rules like trailing-spaces).
func validateRuleOptions(ruleID string, options map[string]interface{}) error {
	schema, ok := schemaRegistry[ruleID]
	if !ok {
		return nil
	}
	for key, value := range options {
		if key == "level" || key == "ignore" {
			continue
		}
		spec, ok := schema[key]
		if !ok {
			return fmt.Errorf("unknown option %q for rule %q", key, ruleID)
		}
		if err := checkOptionValue(ruleID, key, value, spec); err != nil {
			return err
		}
	}
	return nil
}

func checkOptionValue(ruleID, key string, value interface{}, spec OptionSpec) error {
	switch spec.Kind {
	case OptBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("option %q of %q should be a bool", key, ruleID)
		}
	case OptInt:
		if !isIntLike(value) {
			return fmt.Errorf("option %q of %q should be an int", key, ruleID)
		}
	case OptString:
		// A bool or int scalar is accepted too and read as its text, as
		// for indentation's `spaces: 2` or `indent-sequences: true`.
		switch value.(type) {
		case string, bool, int, int64, uint64:
		default:
			return fmt.Errorf("option %q of %q should be a string", key, ruleID)
		}
	case OptEnum:
		s, ok := value.(string)
		if b, isBool := value.(bool); isBool {
			s, ok = fmt.Sprint(b), true
		}
		if !ok || !contains(spec.Enum, s) {
			return fmt.Errorf("option %q of %q should be in %s", key, ruleID, enumList(spec.Enum))
		}
	case OptSeqEnum:
		seq, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("option %q of %q should be a list", key, ruleID)
		}
		for _, item := range seq {
			s, ok := item.(string)
			if !ok || !contains(spec.Enum, s) {
				return fmt.Errorf("option %q of %q should be in %s", key, ruleID, enumList(spec.Enum))
			}
		}
	case OptSeqString:
		seq, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("option %q of %q should be a list of strings", key, ruleID)
		}
		for _, item := range seq {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("option %q of %q should be a list of strings", key, ruleID)
			}
		}
	}
	return nil
}

func isIntLike(v interface{}) bool {
	switch v.(type) {
	case int, int64, uint64:
		return true
	default:
		return false
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func enumList(enum []string) string {
	out := "("
	for i, e := range enum {
		if i > 0 {
			out += ", "
		}
		out += "'" + e + "'"
	}
	return out + ")"
}
