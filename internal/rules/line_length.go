package rules

import (
	"strconv"
	"strings"

	"github.com/yamllint-go/yamllint/internal/config"
)

const lineLengthID = "line-length"

func init() {
	Register(lineLengthID, func(cfg *config.LintConfig) (Rule, bool) {
		opts := resolveOptions(cfg, lineLengthID)
		return lineLengthRule{
			max:            optInt(opts, "max", 80),
			allowLongLines: lineLengthAllowances(opts),
		}, true
	})
	config.RegisterSchema(lineLengthID, config.Schema{
		"max":                                 {Kind: config.OptInt},
		"allow-non-breakable-words":           {Kind: config.OptBool},
		"allow-non-breakable-inline-mappings": {Kind: config.OptBool},
	})
}

type lineLengthRule struct {
	max            int
	allowLongLines lineLengthAllowance
}

type lineLengthAllowance struct {
	nonBreakableWords          bool
	nonBreakableInlineMappings bool
}

func lineLengthAllowances(opts map[string]interface{}) lineLengthAllowance {
	return lineLengthAllowance{
		nonBreakableWords:          optBool(opts, "allow-non-breakable-words", true),
		nonBreakableInlineMappings: optBool(opts, "allow-non-breakable-inline-mappings", false),
	}
}

func (lineLengthRule) ID() string { return lineLengthID }

func (r lineLengthRule) Check(doc *Document, level config.RuleLevel) []Problem {
	var out []Problem
	for i := 1; i <= doc.LineCount(); i++ {
		line := doc.Line(i)
		n := runeLen(line)
		if n <= r.max {
			continue
		}
		if r.isAllowedOverlong(line) {
			continue
		}
		out = append(out, Problem{
			Line:    i,
			Column:  r.max + 1,
			Message: "line too long (" + strconv.Itoa(n) + " > " + strconv.Itoa(r.max) + " characters)",
		})
	}
	return out
}

func (r lineLengthRule) isAllowedOverlong(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if r.allowLongLines.nonBreakableWords {
		fields := strings.Fields(trimmed)
		if len(fields) == 1 {
			return true
		}
		if len(fields) == 2 && (fields[0] == "-" || strings.HasSuffix(fields[0], ":")) {
			return true
		}
	}
	if r.allowLongLines.nonBreakableInlineMappings {
		if idx := strings.Index(trimmed, ": "); idx >= 0 {
			key := trimmed[:idx]
			value := strings.TrimSpace(trimmed[idx+1:])
			if !strings.ContainsAny(key, " \t") && len(strings.Fields(value)) == 1 {
				return true
			}
		}
	}
	return false
}
