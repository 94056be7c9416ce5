// Package static serves files from the Document Root.
//
// Resolution is delegated to Fiber's filesystem middleware over an
// http.Dir, which opens files on every request: regular files are returned
// verbatim with a Content-Type inferred from their extension, directories
// serve index.html or a generated listing, and missing paths or paths
// escaping the root answer 404. Only GET and HEAD are routed; other
// methods answer 405.
//
// # Rewrite Rule
//
// A GET whose raw request target is exactly "/" or "/test" is served
// /frontend_test.html instead. Trailing slashes, query strings and case
// variants are not matched, and HEAD requests are never rewritten.
//
// # Integrity
//
// Service.Check reports whether the landing page exists under the root; it
// backs the "check" command.
package static
