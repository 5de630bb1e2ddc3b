// Package model defines the data structures shared by the license rewriting
// layers.
package model

// Path represents a file system path.
type Path string
