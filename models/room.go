package models

import (
	"encoding/json"
	"fmt"
	"time"

	"hotel-booking/constants"
)

type Room struct {
	RoomId          uint            `json:"id" gorm:"primaryKey"`
	RoomNumber      string          `json:"roomNumber" gorm:"uniqueIndex;size:50"`
	RoomType        string          `json:"roomType"`
	PricePerNight   float64         `json:"pricePerNight"`
	Status          string          `json:"status" gorm:"default:'Available';index"`
	SpecialFeatures json.RawMessage `json:"specialFeatures" gorm:"type:json"`
	Images          json.RawMessage `json:"images" gorm:"type:json"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	for _, s := range constants.RoomStatuses {
		if r.Status == s {
			return nil
		}
	}
	return fmt.Errorf("invalid status: %s", r.Status)
}
