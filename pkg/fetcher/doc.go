// Package fetcher provides polite bulk HTTP fetching with retries,
// randomized inter-request delays, and a bounded concurrency limit.
//
// A Fetcher owns one lazily-created HTTP session (a pooled client plus
// a User-Agent fixed for the session's lifetime) and exposes three
// operations built on the same retrying single-URL primitive:
//
//	f, err := fetcher.New(fetcher.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	// Single URL with retry
//	body, err := f.Fetch(ctx, "https://example.com")
//
//	// Many URLs, one at a time, with a random delay between requests
//	results := f.FetchAll(ctx, urls)
//
//	// Many URLs in parallel, capped by ConcurrentTasks
//	results := f.FetchAllConcurrent(ctx, urls)
//
// Both batch operations return one Result per input URL, in input
// order, regardless of individual failures or completion order. A URL
// whose retries are exhausted degrades to a Result carrying
// ErrRetryExhausted; sibling URLs are unaffected.
//
// HTTP status codes are not errors: the body of a 404 is returned as a
// successful result. Only transport failures, timeouts, and bodies
// that are not valid UTF-8 trigger the retry loop.
package fetcher
