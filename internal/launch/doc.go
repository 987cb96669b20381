// Package launch resolves the next launch to count down to and runs the
// countdown state machine.
//
// # Overview
//
// The Launch Library 2 API (thespacedevs.com) is asked for a handful of
// upcoming launches. The first entry whose NET instant is strictly in the
// future becomes the live Target. When the API cannot be reached, answers
// with garbage, is rate limited, or simply has nothing in the future, a
// simulated Target two days out is used instead so the countdown never
// shows zeros.
//
// # Engine States
//
//	Loading ──fetch ok──> Live ──┐
//	   ^     └─fallback─> Simulated ─┴─> Counting ──remaining <= 0──> Expired
//	   └──────────────────────────────────────────────────────────────────┘
//
// Every pass through Loading bumps the engine generation. Countdown ticks
// carry the generation they were scheduled under, and ticks from an older
// generation are discarded, so at most one recurring countdown timer is ever
// live.
//
// # Rate Limiting
//
// The public dev endpoint allows 15 requests per hour. The Client is built
// with a golang.org/x/time/rate limiter; a refused request falls back to the
// simulated target instead of blocking the UI.
package launch
