package model

import (
	"slices"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Volunteer is an actor who accepts and fulfills requests. ActiveMissions holds the
// ids of requests currently assigned to the volunteer.
type Volunteer struct {
	ID                VolunteerID           `json:"id" firestore:"id"`
	Name              string                `json:"name" firestore:"name"`
	Phone             string                `json:"phone" firestore:"phone"`
	Skills            []string              `json:"skills" firestore:"skills"`
	Resources         []string              `json:"resources" firestore:"resources"`
	Availability      string                `json:"availability" firestore:"availability"`
	Status            types.VolunteerStatus `json:"status" firestore:"status"`
	ActiveMissions    []RequestID           `json:"activeMissions" firestore:"active_missions"`
	CompletedMissions int                   `json:"completedMissions" firestore:"completed_missions"`
	CreatedAt         time.Time             `json:"createdAt" firestore:"created_at"`
	UpdatedAt         time.Time             `json:"updatedAt" firestore:"updated_at"`
}

// NormalizeSets removes duplicate and empty skills and resources
func (v *Volunteer) NormalizeSets() {
	v.Skills = uniqueStrings(v.Skills)
	v.Resources = uniqueStrings(v.Resources)
}

// HasMission reports whether requestID is among the active missions
func (v *Volunteer) HasMission(requestID RequestID) bool {
	return slices.Contains(v.ActiveMissions, requestID)
}

// AddMission records requestID as active. Adding an id twice is a no-op.
func (v *Volunteer) AddMission(requestID RequestID, now time.Time) {
	if !v.HasMission(requestID) {
		v.ActiveMissions = append(v.ActiveMissions, requestID)
	}
	v.syncStatus()
	v.UpdatedAt = now
}

// CompleteMission drops requestID from the active missions and counts one completion.
func (v *Volunteer) CompleteMission(requestID RequestID, now time.Time) {
	v.ActiveMissions = slices.DeleteFunc(v.ActiveMissions, func(id RequestID) bool {
		return id == requestID
	})
	v.CompletedMissions++
	v.syncStatus()
	v.UpdatedAt = now
}

// ReleaseMission drops requestID from the active missions without counting a completion.
// Used when another volunteer closes a mission this volunteer held.
func (v *Volunteer) ReleaseMission(requestID RequestID, now time.Time) {
	v.ActiveMissions = slices.DeleteFunc(v.ActiveMissions, func(id RequestID) bool {
		return id == requestID
	})
	v.syncStatus()
	v.UpdatedAt = now
}

// syncStatus keeps Status = Active iff ActiveMissions is non-empty
func (v *Volunteer) syncStatus() {
	if len(v.ActiveMissions) > 0 {
		v.Status = types.VolunteerStatusActive
	} else {
		v.Status = types.VolunteerStatusAvailable
	}
}

// Validate checks the volunteer's own invariants
func (v *Volunteer) Validate() error {
	if !v.Status.IsValid() {
		return goerr.New("invalid volunteer status", goerr.V(VolunteerIDKey, v.ID), goerr.V("status", v.Status))
	}
	active := len(v.ActiveMissions) > 0
	if active != (v.Status == types.VolunteerStatusActive) {
		return goerr.New("volunteer status does not match active missions",
			goerr.V(VolunteerIDKey, v.ID),
			goerr.V("status", v.Status),
			goerr.V("active_missions", len(v.ActiveMissions)))
	}
	if v.CompletedMissions < 0 {
		return goerr.New("completed missions cannot be negative", goerr.V(VolunteerIDKey, v.ID))
	}
	return nil
}
