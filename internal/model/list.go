package model

import "time"

type ShoppingList struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OwnerGroupID string    `json:"owner_group_id"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}
