// Package resource provides the async-load state container shared by every
// marquee screen that fetches remote data.
//
// # Overview
//
// A Resource[K, T] tracks one logical query at a time. K identifies the
// query (a movie id, a genre id, a search query) and T is the decoded
// payload. The state moves through four phases:
//
//	Idle ──Request(k)──> Loading(k) ──ok──> Ready(k, v)
//	                          │
//	                          └──err──> Failed(k, failure)
//
// Cancel returns the resource to Idle from any phase.
//
// # Stale results
//
// Request bumps a generation counter and cancels the context of the load it
// supersedes. When a load completes it settles only if its generation is
// still current; otherwise its result is discarded. A slow response for a
// previous search therefore never overwrites the results of a newer one.
//
// Requesting the key that is already Loading is a no-op and returns a nil
// command, so repeated key presses never fan out into duplicate requests.
//
// # Bubble Tea integration
//
// Request returns a tea.Cmd. Bubble Tea runs it off the update loop; the
// command settles the resource and yields an UpdatedMsg carrying the
// instance ID, so only the owning screen re-reads State even when several
// screens of the same kind are open. Stale completions yield nil.
//
//	res := resource.New[int, *catalog.Movie](ctx, "detail")
//	cmd := res.Request(42, func(ctx context.Context) (*catalog.Movie, error) {
//		return catalog.LoadMovie(ctx, client, 42)
//	})
//
// Outside Bubble Tea (the CLI) the command is simply invoked inline.
//
// # Errors
//
// Loader errors never escape. They are normalized by Classify into a
// *Failure that matches ErrFetchFailed and records a Kind. Errors
// implementing Kinder report their own kind; anything else is treated as a
// transport failure. A panicking
// loader is recovered into a Failure as well. There is no automatic retry:
// calling Request again with the same key is the retry.
package resource
