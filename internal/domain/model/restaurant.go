package model

// Restaurant describes the single restaurant served by the application.
// It is built once at startup and shared read-only.
type Restaurant struct {
	Name     string
	Type     string // Cuisine, e.g. "Indien".
	Hours    string
	Address  string
	Website  string
	Phone    string
	DineIn   bool
	TakeAway bool
}
