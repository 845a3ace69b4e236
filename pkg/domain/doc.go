// Package domain defines the core value types of the Rosetta catalog:
// topics, their paired idiom snippets, and caveat notes.
//
// Everything here is a plain value. Topics are authored once and read-only
// at consumption time; there is no runtime mutation.
package domain
