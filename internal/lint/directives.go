package lint

import (
	"strings"

	"github.com/yamllint-go/yamllint/internal/rules"
	"github.com/yamllint-go/yamllint/internal/scanner"
)

// lineDirective is a disable directive attached to one physical line,
// either because it was written "disable-line" on that line or because a
// standalone directive comment on a prior line named it as the next
// non-comment line.
type lineDirective struct {
	ruleIDs []string // nil means "all rules"
}

func (d lineDirective) disables(ruleID string) bool {
	if d.ruleIDs == nil {
		return true
	}
	for _, id := range d.ruleIDs {
		if id == ruleID {
			return true
		}
	}
	return false
}

// applyDirectives drops every Problem whose (line, rule) is covered by an
// inline "# yamllint disable[-line]" directive, mirroring the scanning
// idiom the teacher uses for its own @structurelint:ignore comments
// (internal/parser/directives.go) but adapted to yamllint's two directive
// shapes and per-line rather than whole-file scope.
func applyDirectives(doc *rules.Document, problems []rules.Problem) []rules.Problem {
	directives := scanDirectives(doc)
	if len(directives) == 0 {
		return problems
	}
	out := problems[:0]
	for _, p := range problems {
		if d, ok := directives[p.Line]; ok && d.disables(p.Rule) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func scanDirectives(doc *rules.Document) map[int]lineDirective {
	directives := map[int]lineDirective{}
	var tracker scanner.BlockTracker
	var pending *lineDirective

	for i := 1; i <= doc.LineCount(); i++ {
		line := doc.Line(i)
		indent := scanner.LeadingIndent(line)
		content := line[indent:]
		if tracker.ConsumeLine(indent, content) {
			continue
		}

		var q scanner.QuoteState
		idx := q.FindCommentStart(line)
		if idx < 0 {
			// A plain content line: the first one is the target of a
			// pending standalone directive, if any.
			if pending != nil {
				directives[i] = *pending
				pending = nil
			}
			tracker.ObserveIndicator(indent, content)
			continue
		}

		before := strings.TrimSpace(line[:idx])
		comment := strings.TrimSpace(line[idx+1:])
		if d, lineScoped, ok := parseDirectiveComment(comment); ok {
			if lineScoped {
				directives[i] = d
			} else if before == "" {
				pending = &d
			}
			continue
		}

		if before != "" && pending != nil {
			directives[i] = *pending
			pending = nil
		}
		tracker.ObserveIndicator(indent, content)
	}
	return directives
}

// parseDirectiveComment parses the text after "#" in a comment. It
// recognizes "yamllint disable-line[ rule:<id> ...]" (lineScoped=true) and
// "yamllint disable[ rule:<id> ...]" (lineScoped=false, applies to the
// next non-comment line).
func parseDirectiveComment(comment string) (d lineDirective, lineScoped bool, ok bool) {
	const prefix = "yamllint "
	if !strings.HasPrefix(comment, prefix) {
		return d, false, false
	}
	rest := comment[len(prefix):]
	switch {
	case strings.HasPrefix(rest, "disable-line"):
		lineScoped = true
		rest = strings.TrimPrefix(rest, "disable-line")
	case strings.HasPrefix(rest, "disable"):
		lineScoped = false
		rest = strings.TrimPrefix(rest, "disable")
	default:
		return d, false, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return lineDirective{ruleIDs: nil}, lineScoped, true
	}
	var ids []string
	for _, tok := range strings.Fields(rest) {
		tok = strings.TrimPrefix(tok, "rule:")
		tok = strings.TrimSuffix(tok, ",")
		if tok != "" {
			ids = append(ids, tok)
		}
	}
	return lineDirective{ruleIDs: ids}, lineScoped, true
}
