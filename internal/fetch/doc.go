// Package fetch provides the shared HTTP JSON client and result type used by
// every remote-backed dashboard component.
//
// # Overview
//
// The launch schedule, news and chat packages all talk to third-party HTTP
// APIs and all degrade to a fixed offline presentation when those APIs fail.
// Rather than unwinding errors through the UI, each call site receives a
// Result that is either a success carrying the decoded value or a failure
// carrying a Kind:
//
//   - KindTransport: connection refused, DNS failure, reset
//   - KindStatus: the API answered with HTTP >= 400
//   - KindParse: the body was not the JSON we expected
//   - KindEmpty: the payload decoded but held nothing usable
//   - KindTimeout: the request deadline expired or was cancelled
//   - KindRateLimited: the local limiter refused to spend a request
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json (and Content-Type for POST)
//   - Include User-Agent: missionctl/0.1
//   - Are bounded by a 15-second http.Client timeout
//   - Optionally wait on a golang.org/x/time/rate limiter (non-blocking)
//
// # Usage Example
//
//	client := fetch.NewClient(fetch.WithLimiter(rate.NewLimiter(rate.Every(4*time.Minute), 2)))
//
//	var payload launchList
//	if err := client.GetJSON(ctx, endpoint, &payload); err != nil {
//		return fetch.Fail[[]Launch](err)
//	}
//	return fetch.OK(payload.Results)
package fetch
