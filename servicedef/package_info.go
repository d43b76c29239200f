// Package servicedef describes the HTTP contract of the backend under test: the request bodies the
// smoke tests send and the response fields they consume.
//
// Response schemas use optional fields, because the tests must be able to tell "the backend left
// this out" apart from "the backend sent an empty value". Validate methods fail closed: a response
// without a required field is treated as a failed test, never as an empty identifier.
package servicedef
