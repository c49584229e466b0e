package model

import (
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/types"
)

// User is a registered survivor or coordinator. Volunteers have their own record type
// because the assignment engine tracks their capacity.
type User struct {
	ID           UserID         `json:"id" firestore:"id"`
	Role         types.UserRole `json:"role" firestore:"role"`
	Name         string         `json:"name" firestore:"name"`
	Phone        string         `json:"phone" firestore:"phone"`
	Verified     bool           `json:"verified" firestore:"verified"`
	Location     *Location      `json:"location,omitempty" firestore:"location"`
	Organization string         `json:"organization,omitempty" firestore:"organization"`
	CreatedAt    time.Time      `json:"createdAt" firestore:"created_at"`
}

// UserDirectory groups every registered participant by role
type UserDirectory struct {
	Volunteers   []*Volunteer `json:"volunteers"`
	Survivors    []*User      `json:"survivors"`
	Coordinators []*User      `json:"coordinators"`
}
