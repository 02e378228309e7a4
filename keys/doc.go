// Package keys provides key-related helpers for Cyphra operator tooling.
//
// Stable:
//   - Pure, deterministic primitives for signer-key formatting and role-seed
//     derivation.
//
// Experimental:
//   - Filesystem-backed key storage and convenience helpers (KeyStore and
//     related functions). These are local-first utilities and are not part of
//     the long-term protocol contract.
package keys
