package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/liftoff/internal/i18n"
	"github.com/modu-ai/liftoff/internal/ui"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Run asks the default questions, starting from the values already in sel
// and writing every answer back into it.
func Run(sel *models.ProjectSelections, loc *i18n.Localizer) error {
	return RunQuestions(DefaultQuestions(), sel, loc)
}

// RunQuestions asks questions in order.
// Each question runs as its own huh.Form so conditions see earlier answers
// and the huh v0.8.x viewport scroll bug with shared groups is avoided.
func RunQuestions(questions []Question, sel *models.ProjectSelections, loc *i18n.Localizer) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	theme := newLiftoffTheme()
	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(sel) {
			continue
		}

		field, commit := buildField(q, sel, loc)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("wizard error: %w", err)
		}
		commit()
	}
	return nil
}

// buildField creates the huh field for q. The returned commit function
// copies the answer into sel once the form has completed.
func buildField(q *Question, sel *models.ProjectSelections, loc *i18n.Localizer) (huh.Field, func()) {
	title := loc.Text("wizard." + q.ID)

	switch q.Type {
	case QuestionTypeMultiSelect:
		target := listTarget(q.ID, sel)
		values := slices.Clone(*target)
		field := huh.NewMultiSelect[string]().
			Title(title).
			Options(huhOptions(q.Options, values)...).
			Value(&values).
			Validate(func(v []string) error {
				if q.ID == QuestionPlatforms && !slices.Contains(v, models.PlatformCore) {
					return ErrMissingCore
				}
				return nil
			})
		return field, func() { *target = values }

	case QuestionTypeSelect:
		target := textTarget(q.ID, sel)
		value := *target
		field := huh.NewSelect[string]().
			Title(title).
			Options(huhOptions(q.Options, []string{value})...).
			Value(&value)
		return field, func() { *target = value }

	case QuestionTypeConfirm:
		target := boolTarget(q.ID, sel)
		value := *target
		field := huh.NewConfirm().
			Title(title).
			Value(&value)
		return field, func() { *target = value }
	}

	if q.ID == QuestionTasks {
		value := strings.Join(sel.Advanced.GradleTasks, " ")
		field := huh.NewInput().Title(title).Placeholder("build").Value(&value)
		return field, func() { sel.Advanced.GradleTasks = strings.Fields(value) }
	}

	target := textTarget(q.ID, sel)
	value := *target
	field := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(inputValidator(q, loc))
	if value != "" {
		field = field.Placeholder(value)
	}
	return field, func() { *target = strings.TrimSpace(value) }
}

// inputValidator checks required answers first, then the question's own rule.
func inputValidator(q *Question, loc *i18n.Localizer) func(string) error {
	required := q.Required
	check := q.Validate
	return func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			if required {
				return errors.New(loc.Text("wizard.required"))
			}
			return nil
		}
		if check != nil {
			return check(v)
		}
		return nil
	}
}

func huhOptions(opts []Option, selected []string) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, opt := range opts {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		out[i] = huh.NewOption(key, opt.Value).Selected(slices.Contains(selected, opt.Value))
	}
	return out
}

// textTarget returns the selection field bound to a text question.
func textTarget(id string, sel *models.ProjectSelections) *string {
	switch id {
	case QuestionName:
		return &sel.Basic.Name
	case QuestionPackage:
		return &sel.Basic.RootPackage
	case QuestionMainClass:
		return &sel.Basic.MainClass
	case QuestionDestination:
		return &sel.Basic.Destination
	case QuestionAndroidSDK:
		return &sel.Basic.AndroidSDK
	case QuestionTemplate:
		return &sel.Template
	}
	panic(fmt.Sprintf("wizard: no text field for question %q", id))
}

// listTarget returns the selection field bound to a multi-select question.
func listTarget(id string, sel *models.ProjectSelections) *[]string {
	switch id {
	case QuestionPlatforms:
		return &sel.Platforms
	case QuestionLanguages:
		return &sel.Languages
	case QuestionExtensions:
		return &sel.Extensions
	case QuestionThirdParty:
		return &sel.ThirdParty
	}
	panic(fmt.Sprintf("wizard: no list field for question %q", id))
}

// boolTarget returns the selection field bound to a confirm question.
func boolTarget(id string, sel *models.ProjectSelections) *bool {
	switch id {
	case QuestionSkin:
		return &sel.Advanced.GenerateSkin
	case QuestionWrapper:
		return &sel.Advanced.AddWrapper
	}
	panic(fmt.Sprintf("wizard: no flag field for question %q", id))
}

// newLiftoffTheme creates a huh.Theme in the liftoff colors.
func newLiftoffTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ui.ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ui.ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: ui.ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ui.ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
