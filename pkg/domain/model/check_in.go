package model

import (
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/types"
)

// CheckIn is an immutable safety report submitted by a person in the field
type CheckIn struct {
	ID         CheckInID           `json:"id" firestore:"id"`
	UserID     UserID              `json:"userId,omitempty" firestore:"user_id"`
	Name       string              `json:"name" firestore:"name"`
	Status     types.CheckInStatus `json:"status" firestore:"status"`
	Location   *Location           `json:"location,omitempty" firestore:"location"`
	SafeZoneID SafeZoneID          `json:"safeZoneId,omitempty" firestore:"safe_zone_id"`
	Note       string              `json:"note,omitempty" firestore:"note"`
	Timestamp  time.Time           `json:"timestamp" firestore:"timestamp"`
}
