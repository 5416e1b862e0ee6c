package models

import "time"

// PriceTick is one live price update pushed to stream subscribers.
type PriceTick struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Change24h float64   `json:"change_24h"`
	At        time.Time `json:"at"`
}
