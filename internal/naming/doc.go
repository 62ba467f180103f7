// Package naming provides shared case conversion utilities for apidoc2ts packages.
//
// The functions turn property names, endpoint titles and URL paths into
// TypeScript declaration names:
//   - generator: nested interface and enum names from property names
//   - converter: endpoint base names from ApiDoc names, titles and paths
//
// Name derivation never guarantees uniqueness. Collisions are detected by
// the generator, not prevented here.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
