// Package server implements the quadsolve HTTP surface.
//
// Owns:
//   - HTTP routing, handlers, and the request/response contracts on the wire
//   - the embedded web UI (index.html, styles.css, script.js)
//   - the /ws live endpoint (one request contract per text message)
//
// Does not own:
//   - root computation (package quadratic)
//   - response shaping (package response)
//
// Invariants:
//   - Every error reply uses the response contract's error shape
//   - Contract responses are written via writeWire, other JSON via writeJSON
//   - Requests are independent: no state is shared between them
package server
