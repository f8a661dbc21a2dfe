// package keypair holds a contributor's secret scalar and its
// corresponding G2 public key, and the lifecycle around them: several
// constructors for the different forms raw secret material can arrive in,
// the power operation the SRS update needs, and best-effort destruction.
package keypair
