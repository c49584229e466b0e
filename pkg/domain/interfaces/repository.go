package interfaces

// Repository is the Entity Store: it holds requests, volunteers, and the peripheral
// records, and exposes lookup by id plus in-place replacement. It enforces no
// referential consistency between records; that is the assignment engine's job.
type Repository interface {
	Request() RequestRepository
	Volunteer() VolunteerRepository
	User() UserRepository
	SafeZone() SafeZoneRepository
	CheckIn() CheckInRepository
	Message() MessageRepository
	Alert() AlertRepository
	Verification() VerificationRepository

	// Close releases backend resources
	Close() error
}
