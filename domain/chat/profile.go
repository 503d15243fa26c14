package chat

// Profile is the canonical shape the core consumes from the profile
// directory. Alias resolution happens at the directory boundary.
type Profile struct {
	ID          ParticipantID
	DisplayName string
}
