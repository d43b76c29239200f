// Package smoketests contains the StartupOps API smoke tests and the orchestrator that runs them.
//
// The tests are described declaratively as a catalog of phases, each an ordered list of cases.
// The orchestrator is generic: it runs cases in order, threads identifiers from one case into the
// next through a Session, skips phases whose prerequisites are missing, and stops the run only
// when a case marked Fatal fails.
//
// Test run bookkeeping that is not specific to this API is in the lower-level framework package,
// and the transport is in the client package.
package smoketests
