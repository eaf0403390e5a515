package project

// Level classifies diagnostic messages emitted by the packaging engine.
type Level string

// Message level constants
const (
	LevelInformation Level = "Information"
	LevelWarning     Level = "Warning"
	LevelError       Level = "Error"
)

// Message is a structured diagnostic emitted during package creation or import.
type Message struct {
	Source    string
	Level     Level
	Text      string
	Exception string
}

// Events receives callbacks during long-running SDK operations. The host
// invokes these synchronously on the calling goroutine; implementations
// must never panic, since a fault inside a callback aborts the in-flight
// operation.
type Events interface {
	// Progress reports percent-complete with an optional status text.
	Progress(percent int, status string)

	// Message reports a structured diagnostic from the packaging engine.
	Message(msg Message)
}
