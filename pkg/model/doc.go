// Package model provides the document tree shared by the code block converters
// and the indent position resolver. It defines:
// - Node: elements, break markers and text runs linked as a tree
// - Position, Range and Selection: offset addresses into that tree
// - Writer helpers: the only functions that mutate text in place
//
// Positions are only valid until the next mutation of the tree they point into.
package model
