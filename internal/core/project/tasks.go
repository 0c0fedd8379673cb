package project

import "fmt"

// PostTask is an action queued during generation and run after the save
// stage. Tasks carry data only; RunPostTasks interprets them.
type PostTask interface {
	// Describe returns a short human-readable summary for logs.
	Describe() string

	postTask()
}

// AppendToFile appends Text to an existing file at Path, relative to the project root.
type AppendToFile struct {
	Path string
	Text string
}

func (t AppendToFile) Describe() string {
	return fmt.Sprintf("append %d bytes to %s", len(t.Text), t.Path)
}

func (AppendToFile) postTask() {}
