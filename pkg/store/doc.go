// Package store defines the document storage abstraction for windwords.
//
// The Store interface describes the generic lookup, insertion, update and
// counting operations the rest of the system is written against. The
// MongoDB implementation lives in the mongo subpackage; tests use the
// in-memory implementation from the storetest subpackage.
package store
