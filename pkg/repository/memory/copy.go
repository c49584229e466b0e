package memory

import (
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	copied := make([]string, len(s))
	copy(copied, s)
	return copied
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

func copyLocation(l *model.Location) *model.Location {
	if l == nil {
		return nil
	}
	copied := *l
	return &copied
}

// copyRequest creates a deep copy of a request
func copyRequest(r *model.Request) *model.Request {
	copied := *r
	copied.CompletedAt = copyTime(r.CompletedAt)
	return &copied
}

// copyVolunteer creates a deep copy of a volunteer
func copyVolunteer(v *model.Volunteer) *model.Volunteer {
	copied := *v
	copied.Skills = copyStrings(v.Skills)
	copied.Resources = copyStrings(v.Resources)
	copied.ActiveMissions = make([]model.RequestID, len(v.ActiveMissions))
	copy(copied.ActiveMissions, v.ActiveMissions)
	return &copied
}

func copyUser(u *model.User) *model.User {
	copied := *u
	copied.Location = copyLocation(u.Location)
	return &copied
}

func copySafeZone(z *model.SafeZone) *model.SafeZone {
	copied := *z
	copied.Resources = copyStrings(z.Resources)
	return &copied
}

func copyCheckIn(c *model.CheckIn) *model.CheckIn {
	copied := *c
	copied.Location = copyLocation(c.Location)
	return &copied
}

func copyMessage(m *model.Message) *model.Message {
	copied := *m
	copied.ReadAt = copyTime(m.ReadAt)
	return &copied
}
