package memory

import (
	"github.com/MohitGedela/GeoShield/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the volatile, process-local Entity Store. Its lifetime is the process
// lifetime; nothing is persisted.
type Memory struct {
	request      *requestRepository
	volunteer    *volunteerRepository
	user         *userRepository
	safeZone     *safeZoneRepository
	checkIn      *checkInRepository
	message      *messageRepository
	alert        *alertRepository
	verification *verificationRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		request:      newRequestRepository(),
		volunteer:    newVolunteerRepository(),
		user:         newUserRepository(),
		safeZone:     newSafeZoneRepository(),
		checkIn:      newCheckInRepository(),
		message:      newMessageRepository(),
		alert:        newAlertRepository(),
		verification: newVerificationRepository(),
	}
}

func (m *Memory) Request() interfaces.RequestRepository {
	return m.request
}

func (m *Memory) Volunteer() interfaces.VolunteerRepository {
	return m.volunteer
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) SafeZone() interfaces.SafeZoneRepository {
	return m.safeZone
}

func (m *Memory) CheckIn() interfaces.CheckInRepository {
	return m.checkIn
}

func (m *Memory) Message() interfaces.MessageRepository {
	return m.message
}

func (m *Memory) Alert() interfaces.AlertRepository {
	return m.alert
}

func (m *Memory) Verification() interfaces.VerificationRepository {
	return m.verification
}

func (m *Memory) Close() error {
	return nil
}
