// Package urlbuilder assembles the path-segment-encoded processing URLs
// consumed by an imgproxy server.
//
// A caller creates a Chain, invokes one chain method per desired modifier
// (resize, crop, quality, watermark, ...), and finalizes with Build to obtain
// a request path or full URL. Each chain method appends one token to the
// chain; Build appends the source-file segment and, when requested, a
// signature.
//
// # Token Grammar
//
// Every modifier encodes to a single token of the form "key[:arg]*", for
// example "rs:fit:300:200" or "q:80". Tokens are joined with "/" in exact
// call order to form the processing path:
//
//	/rs:fit:300:200/q:80/L2EucG5n
//
// Booleans render as "1"/"0", numbers in minimal decimal form, enumerated
// values verbatim. Omitted trailing optional arguments are dropped from the
// token entirely; an omitted optional that precedes a supplied one renders as
// an empty argument, which imgproxy interprets as "use the default".
//
// # Source File Segment
//
// The final path component identifies the source image. By default the raw
// path or URL is base64url-encoded (no padding) into a single component. In
// plain mode the raw path is inserted verbatim after a literal "plain"
// component instead:
//
//	/rs:fit:300:200/plain//local/cat.jpg
//
// # Signing
//
// When BuildOptions.Signature is set, Build prepends a signature component
// computed as base64url(HMAC-SHA256(key, salt || core-path)) where core-path
// is the token sequence plus file segment, joined by "/", before any base URL
// or leading slash is applied. Key and salt are raw bytes; imgproxy
// distributes them hex-encoded, so decode them first.
//
// # Single Use Per Modifier
//
// Each modifier kind may be applied at most once per chain. Applying the same
// kind twice is a programming error and panics immediately, the same way
// reusing a finished sync.WaitGroup does. Build performs no validation of its
// own and never fails: building with an empty path returns the bare token
// join, ignoring any signature or base URL.
//
// # Thread Safety
//
// A Chain is not safe for concurrent mutation. Distinct chains share no
// state, and Clone returns a fully independent copy, so independent
// goroutines may each own and build their own chain without coordination.
package urlbuilder
