// Package transform provides structural rewrites of externally owned
// structures: edge inversion ([Uproot]), node mapping ([Map]), and
// subtree removal ([Prune]).
//
// All operations in this package mutate or reconstruct nodes and
// therefore require capabilities beyond expansion: Replace everywhere,
// Clone for the copy-before-mutate path of Uproot. A missing capability
// is a loud MISSING_CAPABILITY error naming the offending value's type;
// silent structural corruption is never an acceptable fallback.
//
// These operations are synchronous and single-call. Interleaving them
// with concurrent reads of the same structure is unsafe.
package transform
