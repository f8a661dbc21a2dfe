// package transcript bundles four independently-sized powers-of-τ
// sub-ceremonies into one coordinated round, so a single contributor
// action advances all four SRS at once.
package transcript
