package agent

// Agent is the caller-owned voice agent configuration a session runs on behalf of.
type Agent struct {
	ID           string
	UserID       string
	Name         string
	PersonaName  *string
	SystemPrompt *string
	VoiceGender  *string
	VoiceAccent  *string
	Category     string
	Status       string
	Languages    []string
}

// Summary is the public subset of an agent handed back with a room token.
type Summary struct {
	ID           string
	Name         string
	PersonaName  *string
	SystemPrompt *string
	VoiceGender  *string
	VoiceAccent  *string
}

// Summary returns the public fields of the agent.
func (a *Agent) Summary() Summary {
	return Summary{
		ID:           a.ID,
		Name:         a.Name,
		PersonaName:  a.PersonaName,
		SystemPrompt: a.SystemPrompt,
		VoiceGender:  a.VoiceGender,
		VoiceAccent:  a.VoiceAccent,
	}
}
