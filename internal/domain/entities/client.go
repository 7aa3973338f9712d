package entities

import "time"

// Client is a workshop customer. Orders reference clients by id; deleting a
// client never cascades into its maintenance orders.

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
