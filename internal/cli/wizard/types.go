// Package wizard asks for project selections interactively with huh forms.
package wizard

import (
	"errors"

	"github.com/modu-ai/liftoff/pkg/models"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a text input question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect
	// QuestionTypeMultiSelect is a multiple-choice selection question.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question identifiers. Each one is bound to a selection field.
const (
	QuestionName        = "name"
	QuestionPackage     = "package"
	QuestionMainClass   = "main_class"
	QuestionDestination = "destination"
	QuestionAndroidSDK  = "android_sdk"
	QuestionPlatforms   = "platforms"
	QuestionLanguages   = "languages"
	QuestionExtensions  = "extensions"
	QuestionThirdParty  = "third_party"
	QuestionTemplate    = "template"
	QuestionSkin        = "skin"
	QuestionWrapper     = "wrapper"
	QuestionTasks       = "tasks"
)

// Question defines a single wizard question. The title is the localized
// message "wizard.<ID>".
type Question struct {
	ID        string
	Type      QuestionType
	Options   []Option                             // Options for select questions
	Required  bool                                 // Whether the answer may be empty
	Validate  func(string) error                   // Extra check for input questions
	Condition func(*models.ProjectSelections) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrMissingCore is returned when the platform answer omits core.
	ErrMissingCore = errors.New("the core platform is required")
	// ErrInvalidPackage is returned for a malformed package answer.
	ErrInvalidPackage = errors.New("not a valid java package")
	// ErrInvalidClass is returned for a malformed class name answer.
	ErrInvalidClass = errors.New("not a valid java class name")
)
