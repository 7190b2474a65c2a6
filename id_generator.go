package tandem

import "github.com/google/uuid"

//go:generate go tool mockgen -source=id_generator.go -destination=mock_id_generator_test.go -package=tandem

// IDGenerator mints identifiers for the entities the service creates on
// behalf of clients: tasks, contexts, messages, and push notification
// configs. Injecting it keeps ids deterministic in tests.
type IDGenerator interface {
	GenerateTaskID() string
	GenerateContextID() string
	GenerateMessageID() string
	GeneratePushNotificationConfigID() string
}

// DefaultIDGenerator produces UUID v7 identifiers, which sort by creation
// time and so keep storage listings roughly chronological.
type DefaultIDGenerator struct{}

func (g *DefaultIDGenerator) GenerateTaskID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func (g *DefaultIDGenerator) GenerateContextID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func (g *DefaultIDGenerator) GenerateMessageID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func (g *DefaultIDGenerator) GeneratePushNotificationConfigID() string {
	return uuid.Must(uuid.NewV7()).String()
}
