// Package client talks to the certificate backend over HTTP.
//
// The backend renders previews and final certificates from the payloads
// built by internal/payload, and owns authentication. Failure handling
// follows the wizard's taxonomy: preview failures are logged and
// swallowed (the last good artifacts stay available), submission
// failures surface the backend's detail message verbatim, and the auth
// guard trusts a locally decodable, unexpired token whenever the server
// cannot be reached ("trust-on-decode, verify-when-reachable").
//
// The Previewer debounces preview requests while the document is being
// edited. In-flight requests are not cancelled by newer edits; the last
// response received wins. A response that is already stale when it
// arrives is still applied; that case is logged rather than silently
// dropped.
package client
