// Package entity contains the core business objects of the ordering client,
// each representing a concept the remote coffee service exposes or the client tracks.
package entity

// Coffee is an item of the vending catalog. It is immutable once fetched.
type Coffee struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Cost            int64   `json:"cost"`            // Unit cost in whole currency units.
	PreparationTime int     `json:"preparationTime"` // Seconds.
	Addins          []Addin `json:"addins,omitempty"`
	Strength        *int    `json:"strength,omitempty"` // 1 to 5 when known.
	Image           string  `json:"image,omitempty"`
	Description     string  `json:"description,omitempty"`
}

// Addin is a named, priced extra that can go into a coffee.
type Addin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
