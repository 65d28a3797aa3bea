// Package api exposes invoice rendering over HTTP.
//
// Request bodies are invoice JSON. The formatting locale is taken from the
// invoice (locale, then language), then from Accept-Language, then from
// the invoice currency. Unknown styles fall back to the default skin and
// the response carries X-Style-Fallback: true.
//
// Documents archived with ?store=1 are served back under /archive/<key>,
// which is where the default STORAGE_BASE_URL points.
//
// Errors are JSON {"error": "...", "fields": {...}}: 400 for malformed
// bodies and validation failures, 404 for missing archive objects, 413 for
// oversized bodies, 422 for skin template errors, 503 when sending or
// storage is not configured, and 500 otherwise.
package api
