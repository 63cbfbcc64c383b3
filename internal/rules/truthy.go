package rules

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yamllint-go/yamllint/internal/config"
)

const truthyID = "truthy"

var truthyTokens = []string{
	"YES", "Yes", "yes", "NO", "No", "no",
	"TRUE", "True", "true", "FALSE", "False", "false",
	"ON", "On", "on", "OFF", "Off", "off",
}

func init() {
	Register(truthyID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, truthyID)
		allowed := optStringSlice(opts, "allowed-values", []string{"true", "false"})
		return truthyRule{
			allowed:   allowed,
			checkKeys: optBool(opts, "check-keys", true),
		}, true
	})
	config.RegisterSchema(truthyID, config.Schema{
		"allowed-values": {Kind: config.OptSeqEnum, Enum: truthyTokens},
		"check-keys":     {Kind: config.OptBool},
	})
}

type truthyRule struct {
	allowed   []string
	checkKeys bool
}

func (truthyRule) ID() string { return truthyID }

func (r truthyRule) Check(doc *Document, level config.RuleLevel) []Problem {
	allowedSet := map[string]bool{}
	for _, a := range r.allowed {
		allowedSet[a] = true
	}
	sortedAllowed := append([]string(nil), r.allowed...)
	sort.Strings(sortedAllowed)
	message := "truthy value should be one of [" + strings.Join(sortedAllowed, ", ") + "]"

	var out []Problem
	walkDocument(doc, nodeVisitor{
		OnScalar: func(node *yaml.Node, parent *yaml.Node, isKey bool, depth int) {
			if isKey && !r.checkKeys {
				return
			}
			if !isPlainScalar(node) {
				return
			}
			if !isTruthyToken(node.Value) {
				return
			}
			if allowedSet[node.Value] {
				return
			}
			out = append(out, Problem{
				Line:    node.Line,
				Column:  node.Column,
				Message: message,
			})
		},
	})
	return out
}

func isTruthyToken(s string) bool {
	for _, t := range truthyTokens {
		if s == t {
			return true
		}
	}
	return false
}
