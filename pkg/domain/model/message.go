package model

import (
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/types"
)

// Message is a direct message between participants. It is broadcast to every
// observer; recipients filter on ToUserID.
type Message struct {
	ID         MessageID  `json:"id" firestore:"id"`
	FromUserID string     `json:"fromUserId" firestore:"from_user_id"`
	FromName   string     `json:"fromName,omitempty" firestore:"from_name"`
	ToUserID   string     `json:"toUserId" firestore:"to_user_id"`
	RequestID  RequestID  `json:"requestId,omitempty" firestore:"request_id"`
	Content    string     `json:"content" firestore:"content"`
	Timestamp  time.Time  `json:"timestamp" firestore:"timestamp"`
	Read       bool       `json:"read" firestore:"read"`
	ReadAt     *time.Time `json:"readAt,omitempty" firestore:"read_at"`
}

// Alert is a request forwarded by a coordinator to one volunteer. Observers
// filter on VolunteerID.
type Alert struct {
	ID          AlertID       `json:"id" firestore:"id"`
	RequestID   RequestID     `json:"requestId" firestore:"request_id"`
	VolunteerID VolunteerID   `json:"volunteerId" firestore:"volunteer_id"`
	Message     string        `json:"message" firestore:"message"`
	RequestType string        `json:"requestType" firestore:"request_type"`
	Urgency     types.Urgency `json:"urgency" firestore:"urgency"`
	Location    Location      `json:"location" firestore:"location"`
	Timestamp   time.Time     `json:"timestamp" firestore:"timestamp"`
}
