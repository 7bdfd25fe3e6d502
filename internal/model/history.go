package model

import "time"

// HistoryRecord is an immutable purchase receipt. It is created exactly once
// per checkout and never mutated afterwards.
type HistoryRecord struct {
	ID           string    `json:"id"`
	OwnerGroupID string    `json:"owner_group_id"`
	ItemName     string    `json:"item_name"`
	FinalPrice   float64   `json:"final_price"`
	TotalSize    float64   `json:"total_size"`
	BaseUnit     string    `json:"base_unit"`
	Category     string    `json:"category,omitempty"`
	ListName     string    `json:"list_name,omitempty"`
	StoreName    string    `json:"store_name,omitempty"`
	PurchasedAt  time.Time `json:"purchased_at"`
}
