package model

// Book is addressed by its title slug. Availability is the two-state
// borrow machine: Available (true) and Borrowed (false).
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Slug        string `json:"slug"`
	IsAvailable bool   `json:"is_available"`
}
