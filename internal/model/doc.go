// Package model implements the validation engine and the validated record
// instances it produces.
//
// Validation is strict and atomic: a raw record is checked field by field
// against its entity type's descriptor table, and the first violation found
// (an undeclared field, a missing required field, or a value of the wrong
// semantic type) aborts validation of the whole record. No partial instance
// is ever returned. Every violation carries the path inside the record where
// it occurred, down to the index of a failing sequence element.
package model
