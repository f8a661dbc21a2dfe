// package proof implements the two proof objects a contribution round
// produces: ProductDecomposition, the knowledge-of-exponent chain proof,
// and UpdateProof, the single-contributor record it is built from.
package proof
