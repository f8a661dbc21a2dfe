// package srs implements the Structured Reference String: its fixed-size
// G1/G2 point vectors, the per-contribution update, the three-part
// correctness check, the wire codec, and the full-chain verification that
// ties a before/after SRS pair to the update proofs that connect them.
package srs
