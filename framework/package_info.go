// Package framework contains the low-level implementation of test run infrastructure that does not
// depend on what is being tested.
//
// There is a general notion of a test context which is similar to Go's *testing.T, allowing pieces
// of test logic to be associated with a test identifier and to accumulate success/failure results.
// A run produces Results, from which a Report is computed once at the end.
//
// The domain-specific code that knows what is being tested is responsible for issuing requests to
// the system under test and for deciding what counts as a failure.
package framework
