// Package fieldx turns a registry of per-field rules into uniform
// asynchronous field validators.
//
// A rule is a plain function from a candidate value to an ordered sequence
// of candidate entries - error message strings, where the empty string means
// "no finding". The sequence can be available immediately or produced by a
// delayed computation; fieldx hides that difference behind one contract:
// every field validator returns an asyncx future that settles with the
// field's findings.
//
// Basic Usage:
//
//	import (
//		"github.com/btnwtn/form-bureaucracy/asyncx"
//		"github.com/btnwtn/form-bureaucracy/fieldx"
//	)
//
//	v := fieldx.New(fieldx.Rules{
//		"email": func(ctx context.Context, value any) (fieldx.Result, error) {
//			s, _ := value.(string)
//			return fieldx.Entries(
//				fieldx.When(s == "", "required"),
//				fieldx.When(!strings.Contains(s, "@"), "missing @"),
//			), nil
//		},
//		"username": func(ctx context.Context, value any) (fieldx.Result, error) {
//			s, _ := value.(string)
//			return fieldx.Deferred(asyncx.Go(ctx, func(ctx context.Context) ([]string, error) {
//				taken, err := store.UsernameTaken(ctx, s)
//				if err != nil {
//					return nil, err
//				}
//				return []string{fieldx.When(taken, "already taken")}, nil
//			})), nil
//		},
//	})
//
//	validate := v.Field("email")
//	findings, err := validate(ctx, "a@b.com").Await(ctx)
//
// Normalization:
//
// Each invocation of a field validator calls the rule exactly once, within
// the calling goroutine. An immediate result is filtered and resolved on the
// spot; a deferred result is filtered once its future settles. Filtering
// drops every empty-string entry and preserves the order of the rest,
// untouched. The same rule may return either shape on different calls.
//
// Failures:
//
// A rule's error return, or a deferred future settling with an error, fails
// the field validator's future with that exact error. fieldx never logs,
// wraps or swallows rule failures; findings and failures stay distinct
// (a call that finds problems still resolves successfully).
//
// Unregistered fields:
//
// Looking up a field with no registered rule still returns a callable
// validator. By default it resolves to an empty finding list - no rule means
// always valid. Construct the validator with WithStrictLookup to get an
// ErrNoRule failure instead.
//
// The registry passed to New is copied at construction and never mutated.
// Validators are safe for concurrent use; overlapping invocations, for the
// same field or different ones, run independently with no deduplication and
// no cancellation of earlier calls.
package fieldx
