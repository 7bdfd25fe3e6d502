package model

import "time"

type Item struct {
	ID           string    `json:"id"`
	ListID       string    `json:"list_id"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	IsPurchased  bool      `json:"is_purchased"`
	OwnerGroupID string    `json:"owner_group_id"`
	CreatedAt    time.Time `json:"created_at"`
}
