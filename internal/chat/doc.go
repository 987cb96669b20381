// Package chat implements the mission control chat widget: an append-only
// transcript, a stateless remote backend call bounded by a deadline, and a
// keyword rule table that answers when the backend cannot.
//
// # Message Flow
//
//  1. Send rejects blank input, appends the user message, then appends a
//     pending bot placeholder with a ULID id.
//  2. Ask posts only the user's text to the backend under a 10 second
//     deadline. Nothing from earlier turns is sent.
//  3. Resolve rewrites the placeholder in place with either the backend
//     reply or the fallback answer. The placeholder never becomes a second
//     transcript entry.
//
// # Backends
//
//   - HTTPBackend: POST {"message": ...} and read {"reply": ...}
//   - OpenAIBackend: one Chat Completions call with a fixed system prompt
//   - OfflineBackend: always unavailable, so every answer comes from Rules
package chat
