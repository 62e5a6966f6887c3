package fieldx

import (
	"context"

	"github.com/btnwtn/form-bureaucracy/asyncx"
)

// Rule inspects a candidate value for one field and reports its findings.
//
// A rule returns its candidate entries either immediately, via Entries, or
// as a delayed computation, via Deferred. The same rule may switch between
// the two shapes from call to call; the field validator normalizes both to
// the same asynchronous contract.
//
// A non-nil error stands for an operational failure (the rule itself broke,
// not the value). It is propagated to the caller verbatim and is never
// turned into findings.
type Rule func(ctx context.Context, value any) (Result, error)

// Rules maps field names to their rules. It is the caller-built rule
// registry consumed by New.
type Rules map[string]Rule

// Result is the outcome of a rule invocation: an ordered sequence of
// candidate entries, available either immediately or eventually.
//
// The two shapes are constructed with Entries and Deferred; the interface is
// sealed so normalization can match over the variants exhaustively.
type Result interface {
	isResult()
}

type immediate struct {
	entries []string
}

func (immediate) isResult() {}

type deferred struct {
	future *asyncx.Future[[]string]
}

func (deferred) isResult() {}

// Entries returns a Result whose candidate entries are available
// immediately. Empty entries are discarded during normalization, so rules
// can emit conditional entries with When and let the filter sort them out.
func Entries(entries ...string) Result {
	return immediate{entries: entries}
}

// Deferred returns a Result whose candidate entries become available when
// the future settles. A future that settles with an error fails the field
// validation with that same error.
func Deferred(future *asyncx.Future[[]string]) Result {
	return deferred{future: future}
}

// When returns msg if cond holds and the empty string otherwise. The empty
// string is the "no finding" entry and is dropped during normalization:
//
//	fieldx.Entries(
//		fieldx.When(v == "", "required"),
//		fieldx.When(!strings.Contains(v, "@"), "missing @"),
//	)
func When(cond bool, msg string) string {
	if cond {
		return msg
	}
	return ""
}

// compact drops empty entries, preserving the order of the rest.
// Surviving messages pass through untouched: no trimming, no deduplication.
func compact(entries []string) []string {
	findings := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry != "" {
			findings = append(findings, entry)
		}
	}
	return findings
}
