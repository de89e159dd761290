package models

import "time"

// Registration records an attendee signup for an approved event.
type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	Nombre       string    `json:"nombre"`
	Apellidos    string    `json:"apellidos"`
	Edad         int       `json:"edad"`
	Email        string    `json:"email"`
	Telefono     string    `json:"telefono"`
	RegisteredAt time.Time `json:"registeredAt"`
}
