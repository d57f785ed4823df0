// Package source provides built-in input sequence generators.
//
// Data sources produce the integer sequences that strategies sum.
// The package includes:
//
//   - Static: Fixed values, repeated cyclically
//   - Random: Seeded uniform random values in [0, MaxValue)
//
// Fingerprint computes an xxh3 digest of a sequence so callers can check
// that a summation left its input untouched.
//
// Custom sources can be implemented by satisfying the types.DataSource interface.
package source
