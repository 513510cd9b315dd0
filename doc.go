// Package iso4 computes ISO-4 abbreviations of serial and journal titles.
//
// An Engine is built once from the List of Title Word Abbreviations (LTWA)
// and a short-word dictionary, both supplied as raw dictionary text; see
// Build. Every query method on Engine is then a pure function of the engine
// and its arguments: there is no shared mutable state, so a single Engine
// can be queried from many goroutines without locking.
package iso4
