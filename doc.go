// Package ceremony has no code of its own; it exists so go doc has a
// home for the module's overview. The actual implementation
// lives in the bls, keypair, proof, srs, actor, and transcript
// subpackages — see each for its own doc comment.
//
// A typical round looks like this: a coordinator holds the current SRS;
// it hands the serialized bytes to a contributor; the contributor
// deserializes, applies a fresh keypair's update, and hands back both
// the new bytes and an update proof; the coordinator checks the proof
// chains from its current SRS to the new one and, on success, swaps it
// in. After any number of rounds, a verifier independently replays the
// whole chain from the ceremony's starting SRS to its final one.
package ceremony
