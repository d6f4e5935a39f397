package spheregrid

// Item is one entry supplied by the host. The engine keeps a reference and
// never mutates it.
type Item struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	Label   string `json:"label,omitempty"`
	Caption string `json:"caption,omitempty"`
}
