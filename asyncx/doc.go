// Package asyncx provides a small promise-style primitive for delayed
// computations, built on goroutines and channels.
//
// The central type is the generic Future, the eventual result of a
// computation. A Future settles exactly once, with a value or an error, and
// every waiter observes the same settlement.
//
// Futures are obtained three ways:
//
//   - Go starts a function in its own goroutine and returns a Future for its
//     result.
//   - Resolved and Rejected return futures that are already settled, which
//     lets synchronous results flow through an asynchronous contract without
//     spawning a goroutine.
//   - Then derives a new Future by transforming another one's value; errors
//     pass through the chain unmodified.
//
// Waiting is context-aware: Await returns as soon as the future settles or
// the caller's context is done, and AwaitTimeout bounds the wait with a
// duration. A context expiry only affects that particular wait - the future
// keeps running and can be awaited again.
//
// All and Any coordinate several futures at once.
//
//	future := asyncx.Go(ctx, func(ctx context.Context) ([]string, error) {
//		return lookup(ctx, value)
//	})
//
//	result, err := future.Await(ctx)
package asyncx
