// package bls wraps the BLS12-381 group and field arithmetic that the
// rest of this module needs: typed G1/G2 points, scalar field elements,
// the compressed point codec, subgroup membership, and pairing equality
// checks. Everything outside this package talks to curve points only
// through these types, never through gnark-crypto's types directly.
package bls
