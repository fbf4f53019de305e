package model

// Page is one window of a paginated listing
type Page struct {
	Items      interface{} // slice of the listed type
	Number     int
	Size       int
	TotalItems int64
}

// HasPrev reports whether a page precedes this one
func (p Page) HasPrev() bool {
	return p.Number > 0
}

// HasNext reports whether more items follow this page
func (p Page) HasNext() bool {
	return int64((p.Number+1)*p.Size) < p.TotalItems
}
