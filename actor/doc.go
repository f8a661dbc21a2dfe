// package actor holds the three thin state-holders that coordinate a
// ceremony round: Contributor, who updates an SRS and attests to the one
// it received; Coordinator, who owns the authoritative SRS and proof
// list; and Verifier, who independently checks a completed ceremony.
package actor
