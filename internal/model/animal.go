package model

import "time"

// Animal is a pet profile as served by the animals endpoints.
type Animal struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Species          string    `json:"species"`
	Breed            string    `json:"breed"`
	Age              int       `json:"age"`
	Weight           float64   `json:"weight"`
	HealthConditions []string  `json:"healthConditions"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateAnimalRequest carries the fields accepted when creating an animal.
// All fields are optional; missing values are filled with defaults.
type CreateAnimalRequest struct {
	Name             string   `json:"name"`
	Species          string   `json:"species"`
	Breed            string   `json:"breed"`
	Age              int      `json:"age"`
	Weight           float64  `json:"weight"`
	HealthConditions []string `json:"healthConditions"`
}
