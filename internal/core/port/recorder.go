package port

type Recorder interface {
	// CommandHandled counts a dispatched command by trigger and outcome.
	CommandHandled(command string, outcome string)
	// BackendRequest counts a finished backend call. Status is 0 when no response was received.
	BackendRequest(method, path string, status int)
}
