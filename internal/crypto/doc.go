// Package crypto exposes the small set of primitives safe relies on.
//
// Contents
//
//   - Short content fingerprints for comparing two copies of a store
//     (Fingerprint)
//   - Best-effort memory wiping for buffers that held secrets (Wipe)
//
// # Notes
//
// Nothing here encrypts stored values. The store file is cleartext.
package crypto
