// Package pathnorm rewrites installed file paths into manifest-relative
// names. The rewrite is an ordered set of prefix rules tried in sequence,
// which keeps each rule's contract testable in isolation.
package pathnorm
