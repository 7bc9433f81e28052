//go:build !plan9

package records

// Handle only exists where the file builds.
//
//setters:gen
type Handle struct {
	fd uintptr
}
