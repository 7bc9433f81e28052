package stale

// Rec had its field renamed after rec_setters.go was generated.
//
//setters:gen
type Rec struct {
	title string
}
