package wizard

import (
	"github.com/modu-ai/liftoff/internal/catalog"
	"github.com/modu-ai/liftoff/internal/config"
	"github.com/modu-ai/liftoff/pkg/models"
)

// DefaultQuestions returns the questions asked by Run, in order.
func DefaultQuestions() []Question {
	return []Question{
		{ID: QuestionName, Type: QuestionTypeInput, Required: true},
		{ID: QuestionPackage, Type: QuestionTypeInput, Required: true, Validate: validatePackage},
		{ID: QuestionMainClass, Type: QuestionTypeInput, Required: true, Validate: validateClass},
		{ID: QuestionDestination, Type: QuestionTypeInput, Required: true},
		{ID: QuestionPlatforms, Type: QuestionTypeMultiSelect, Options: entryOptions(catalog.Platforms())},
		{
			ID:   QuestionAndroidSDK,
			Type: QuestionTypeInput,
			Condition: func(sel *models.ProjectSelections) bool {
				return sel.HasPlatform(models.PlatformAndroid)
			},
		},
		{ID: QuestionLanguages, Type: QuestionTypeMultiSelect, Options: entryOptions(catalog.Languages())},
		{ID: QuestionExtensions, Type: QuestionTypeMultiSelect, Options: entryOptions(catalog.Extensions())},
		{ID: QuestionThirdParty, Type: QuestionTypeMultiSelect, Options: entryOptions(catalog.ThirdPartyExtensions())},
		{ID: QuestionTemplate, Type: QuestionTypeSelect, Options: entryOptions(catalog.Templates())},
		{ID: QuestionSkin, Type: QuestionTypeConfirm},
		{ID: QuestionWrapper, Type: QuestionTypeConfirm},
		{ID: QuestionTasks, Type: QuestionTypeInput},
	}
}

func entryOptions(entries []catalog.Entry) []Option {
	opts := make([]Option, len(entries))
	for i, e := range entries {
		opts[i] = Option{Label: e.Name, Value: e.ID, Desc: e.Description}
	}
	return opts
}

func validatePackage(v string) error {
	if !config.IsValidPackage(v) {
		return ErrInvalidPackage
	}
	return nil
}

func validateClass(v string) error {
	if !config.IsValidIdentifier(v) {
		return ErrInvalidClass
	}
	return nil
}
