package model

import "time"

// SafeZone is a shelter or gathering point survivors can be directed to
type SafeZone struct {
	ID        SafeZoneID `json:"id" firestore:"id"`
	Name      string     `json:"name" firestore:"name"`
	Location  Location   `json:"location" firestore:"location"`
	Capacity  int        `json:"capacity" firestore:"capacity"`
	Occupancy int        `json:"currentOccupancy" firestore:"occupancy"`
	Resources []string   `json:"resources" firestore:"resources"`
	Status    string     `json:"status" firestore:"status"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updated_at"`
}
