package records

import (
	"io"
	"math/rand"
	randv2 "math/rand/v2"
)

//setters:gen
type ID int

type Alias = struct{ X int }

// Grouped declarations.
type (
	// First is documented.
	//
	//setters:gen owned
	First struct{ a, b int }

	Second struct{ c string }
)

// Platform has fields of every shape.
//
//setters:gen
type Platform struct {
	// fd is an OS handle.
	fd int //nolint:unused
	io.Reader
	src  *rand.Rand
	src2 *randv2.Rand `db:"src2"`
	_    int
}

// Snapshot declares a Clone that does not return Snapshot.
//
//setters:gen immutable
type Snapshot struct{ v int }

func (s Snapshot) Clone() *Snapshot { return &s }

// Box declares a matching Clone.
//
//setters:gen immutable
type Box[T any] struct{ v T }

func (b *Box[T]) Clone() Box[T] { return *b }
