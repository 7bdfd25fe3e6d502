package model

// StoreLabel is a deduplicated free-text store name used for autocomplete.
// Names are case-insensitively unique; the first-seen casing is preserved.
type StoreLabel struct {
	Name string `json:"name"`
}
