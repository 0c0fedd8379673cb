package config

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/modu-ai/liftoff/internal/catalog"
	"github.com/modu-ai/liftoff/pkg/models"
)

// Dynamic token patterns that must not appear in selection values.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),   // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`), // {{VAR}}
}

var javaIdentifier = regexp.MustCompile(`^[\p{L}_$][\p{L}\p{N}_$]*$`)

var javaKeywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while", "true", "false", "null",
	"_",
}

// Validate checks sel for correctness. All problems are reported together
// in a *ValidationErrors, which matches ErrInvalidConfig under errors.Is.
func Validate(sel *models.ProjectSelections) error {
	var errs []ValidationError

	errs = append(errs, validateBasic(&sel.Basic)...)
	errs = append(errs, validatePlatforms(sel.Platforms)...)
	errs = append(errs, validateIDs("languages", sel.Languages, func(id string) bool {
		return id == catalog.Java || catalog.IsLanguage(id)
	})...)
	errs = append(errs, validateIDs("extensions", sel.Extensions, catalog.IsExtension)...)
	errs = append(errs, validateIDs("third_party", sel.ThirdParty, catalog.IsThirdParty)...)
	if sel.Template != "" && !catalog.IsTemplate(sel.Template) {
		errs = append(errs, unknownID("template", sel.Template))
	}
	errs = append(errs, validateCompatibility(sel)...)
	errs = append(errs, validateTasks(sel.Advanced.GradleTasks)...)
	errs = append(errs, validateDynamicTokens(sel)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateBasic(b *models.BasicData) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(b.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "basic.name",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}
	if strings.TrimSpace(b.Destination) == "" {
		errs = append(errs, ValidationError{
			Field:   "basic.destination",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}
	if !IsValidPackage(b.RootPackage) {
		errs = append(errs, ValidationError{
			Field:   "basic.package",
			Message: "must be dot-separated java identifiers, such as com.example.game",
			Value:   b.RootPackage,
			Wrapped: ErrInvalidIdentifier,
		})
	}
	if b.MainClass != "" && !IsValidIdentifier(b.MainClass) {
		errs = append(errs, ValidationError{
			Field:   "basic.main_class",
			Message: "must be a java identifier",
			Value:   b.MainClass,
			Wrapped: ErrInvalidIdentifier,
		})
	}
	return errs
}

func validatePlatforms(ids []string) []ValidationError {
	errs := validateIDs("platforms", ids, catalog.IsPlatform)
	if !slices.Contains(ids, models.PlatformCore) {
		errs = append(errs, ValidationError{
			Field:   "platforms",
			Message: "the core platform must be enabled",
			Value:   strings.Join(ids, ","),
			Wrapped: ErrMissingCore,
		})
	}
	return errs
}

// validateCompatibility rejects combinations that generate but cannot build.
// GWT compiles Java sources only, so a Kotlin-only core cannot target html.
func validateCompatibility(sel *models.ProjectSelections) []ValidationError {
	if sel.Template == catalog.TemplateKotlin && slices.Contains(sel.Platforms, models.PlatformHTML) {
		return []ValidationError{{
			Field:   "template",
			Message: "the kotlin template cannot be compiled by the html (GWT) platform",
			Value:   sel.Template,
			Wrapped: ErrIncompatible,
		}}
	}
	return nil
}

func validateIDs(field string, ids []string, known func(string) bool) []ValidationError {
	var errs []ValidationError
	for _, id := range ids {
		if !known(id) {
			errs = append(errs, unknownID(field, id))
		}
	}
	return errs
}

func unknownID(field, id string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: "unknown id; run 'liftoff list' for the available ids",
		Value:   id,
		Wrapped: catalog.ErrUnknownID,
	}
}

func validateTasks(tasks []string) []ValidationError {
	var errs []ValidationError
	for _, task := range tasks {
		if task == "" || strings.ContainsAny(task, " \t\r\n") {
			errs = append(errs, ValidationError{
				Field:   "advanced.gradle_tasks",
				Message: "task names must be non-empty and contain no whitespace",
				Value:   task,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

// IsValidPackage reports whether pkg is one or more dot-separated Java
// identifiers.
func IsValidPackage(pkg string) bool {
	if pkg == "" {
		return false
	}
	for seg := range strings.SplitSeq(pkg, ".") {
		if !IsValidIdentifier(seg) {
			return false
		}
	}
	return true
}

// IsValidIdentifier reports whether s is a Java identifier other than a
// reserved word.
func IsValidIdentifier(s string) bool {
	return javaIdentifier.MatchString(s) && !slices.Contains(javaKeywords, s)
}

// validateDynamicTokens rejects unexpanded template tokens in text fields.
func validateDynamicTokens(sel *models.ProjectSelections) []ValidationError {
	var errs []ValidationError
	errs = append(errs, checkStringField("basic.name", sel.Basic.Name)...)
	errs = append(errs, checkStringField("basic.destination", sel.Basic.Destination)...)
	errs = append(errs, checkStringField("basic.android_sdk", sel.Basic.AndroidSDK)...)
	errs = append(errs, checkStringField("advanced.gdx_version", sel.Advanced.GdxVersion)...)
	errs = append(errs, checkStringField("advanced.project_version", sel.Advanced.ProjectVersion)...)
	errs = append(errs, checkStringField("advanced.java_version", sel.Advanced.JavaVersion)...)
	for _, id := range slices.Sorted(maps.Keys(sel.Advanced.Versions)) {
		errs = append(errs, checkStringField("advanced.versions."+id, sel.Advanced.Versions[id])...)
	}
	return errs
}

// checkStringField checks a single string field for dynamic token patterns.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Wrapped: ErrDynamicToken,
				},
			}
		}
	}
	return nil
}
