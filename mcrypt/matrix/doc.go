// Package matrix provides a small float32 matrix type with the usual
// arithmetic: scaling, multiplication, transposition, and row/cell access.
package matrix
