package fieldx

import (
	"context"
	"sort"

	"github.com/btnwtn/form-bureaucracy/asyncx"
)

// FieldValidator validates candidate values for a single field. The returned
// future settles with the field's findings: the rule's entries in emission
// order with every empty entry removed. An empty list means the value is
// valid.
//
// Each invocation is independent: no state is carried between calls, and
// overlapping invocations of the same validator run to completion on their
// own.
type FieldValidator func(ctx context.Context, value any) *asyncx.Future[[]string]

// Validator derives field validators from a rule registry captured at
// construction time. It is immutable and safe for concurrent use.
type Validator struct {
	rules  Rules
	strict bool
}

// Option configures a Validator
type Option func(*Validator)

// WithStrictLookup makes validators for unregistered fields fail with
// ErrNoRule instead of resolving to an empty finding list. Use it when an
// unknown field name is a wiring mistake you want surfaced rather than
// silently passed.
func WithStrictLookup() Option {
	return func(v *Validator) {
		v.strict = true
	}
}

// New builds a Validator from the given rule registry. The registry is
// copied, so later changes to the caller's map do not affect the validator.
// Construction never fails; a missing or nil rule only matters once the
// corresponding field validator is invoked.
func New(rules Rules, opts ...Option) *Validator {
	copied := make(Rules, len(rules))
	for name, rule := range rules {
		copied[name] = rule
	}

	v := &Validator{rules: copied}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Fields returns the registered field names in lexical order
func (v *Validator) Fields() []string {
	names := make([]string, 0, len(v.rules))
	for name := range v.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field returns the validator for the named field. The lookup itself never
// fails: an unregistered name yields a validator that resolves to an empty
// finding list ("no rule means always valid"), or rejects with ErrNoRule
// under WithStrictLookup.
func (v *Validator) Field(name string) FieldValidator {
	rule, ok := v.rules[name]
	if !ok {
		if v.strict {
			return func(ctx context.Context, value any) *asyncx.Future[[]string] {
				return asyncx.Rejected[[]string](FieldErrors.New(ErrNoRule).WithDetail("field", name))
			}
		}
		return func(ctx context.Context, value any) *asyncx.Future[[]string] {
			return asyncx.Resolved([]string{})
		}
	}

	if rule == nil {
		return func(ctx context.Context, value any) *asyncx.Future[[]string] {
			return asyncx.Rejected[[]string](FieldErrors.New(ErrNilRule).WithDetail("field", name))
		}
	}

	return func(ctx context.Context, value any) *asyncx.Future[[]string] {
		return normalize(ctx, rule, value)
	}
}

// normalize invokes the rule once and funnels whichever result shape it
// produced into the uniform future-of-findings contract.
func normalize(ctx context.Context, rule Rule, value any) *asyncx.Future[[]string] {
	result, err := rule(ctx, value)
	if err != nil {
		// Operational failure: surface it verbatim
		return asyncx.Rejected[[]string](err)
	}

	if result == nil {
		return asyncx.Resolved([]string{})
	}

	switch r := result.(type) {
	case immediate:
		return asyncx.Resolved(compact(r.entries))
	case deferred:
		if r.future == nil {
			return asyncx.Resolved([]string{})
		}
		return asyncx.Then(r.future, func(entries []string) ([]string, error) {
			return compact(entries), nil
		})
	default:
		// Result is sealed; this is unreachable without a new variant
		return asyncx.Rejected[[]string](FieldErrors.New(ErrUnknownResult))
	}
}

// Findings maps field names to their resolved error messages. Fields with
// no findings are absent.
type Findings map[string][]string

// Valid reports whether no field produced findings
func (f Findings) Valid() bool {
	return len(f) == 0
}

// Has reports whether the named field produced findings
func (f Findings) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// Get returns the findings for the named field, or nil
func (f Findings) Get(field string) []string {
	return f[field]
}

// Validate runs every registered field's validator against the matching
// entry in values, concurrently, and collects the findings. Fields missing
// from values are validated against nil. Each rule still sees only its own
// field's value; this is fan-out plumbing, not cross-field validation.
//
// The first operational failure aborts the collection and is returned
// verbatim.
func (v *Validator) Validate(ctx context.Context, values map[string]any) (Findings, error) {
	names := v.Fields()

	futures := make([]*asyncx.Future[[]string], len(names))
	for i, name := range names {
		futures[i] = v.Field(name)(ctx, values[name])
	}

	results, err := asyncx.All(ctx, futures...)
	if err != nil {
		return nil, err
	}

	findings := make(Findings)
	for i, name := range names {
		if len(results[i]) > 0 {
			findings[name] = results[i]
		}
	}
	return findings, nil
}
