// Package quadratic solves a·x² + b·x + c = 0 over the reals and complexes.
//
// Owns:
//   - the root classification lattice (identity, contradiction, linear,
//     zero/positive/negative discriminant)
//   - root canonicalisation (tolerance clamp of float noise around zero)
//   - coefficient type checks and the equation-string parser
//
// Does not own:
//   - wire encoding of roots (package response)
//   - request decoding and HTTP transport (packages shared and server)
//
// Invariants:
//   - Solve is pure: no I/O, no logging, no shared state
//   - AnyNumber roots only appear alone in a one-element result
//   - Complex roots always have a non-zero imaginary part
package quadratic
