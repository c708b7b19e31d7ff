// Package entities contains domain entities used across the application.
package entities

// CategoryAny is the sentinel category ID meaning "questions from any category".
const CategoryAny = 0

// CategoryAnyName is the display name of the CategoryAny sentinel.
const CategoryAnyName = "Any Category"

// Category represents a named group of trivia questions as published by the provider.
type Category struct {
	ID   int    `json:"id"`   // provider category ID
	Name string `json:"name"` // human readable category name
}
