package project

import "fmt"

// TaskKind is the kind of manual task a package is created for.
type TaskKind string

// Task kind constants
const (
	TaskTranslate TaskKind = "Translate"
	TaskReview    TaskKind = "Review"
)

// ParseTaskKind validates a task kind supplied on the command line.
func ParseTaskKind(s string) (TaskKind, error) {
	switch TaskKind(s) {
	case TaskTranslate, TaskReview:
		return TaskKind(s), nil
	}
	return "", fmt.Errorf("invalid task type %q (expected Translate or Review)", s)
}

// ProjectTMMode controls how a project translation memory is bundled.
type ProjectTMMode string

// Project TM mode constants
const (
	ProjectTMNone        ProjectTMMode = "None"
	ProjectTMUseExisting ProjectTMMode = "UseExisting"
	ProjectTMCreateNew   ProjectTMMode = "CreateNew"
)

// ParseProjectTMMode validates a project TM mode supplied on the command line.
func ParseProjectTMMode(s string) (ProjectTMMode, error) {
	switch ProjectTMMode(s) {
	case ProjectTMNone, ProjectTMUseExisting, ProjectTMCreateNew:
		return ProjectTMMode(s), nil
	}
	return "", fmt.Errorf("invalid project TM mode %q (expected None, UseExisting or CreateNew)", s)
}

// PackageOptions controls what a created package contains.
type PackageOptions struct {
	ProjectTM                           ProjectTMMode
	IncludeAutoSuggestDictionaries      bool
	IncludeMainTMs                      bool
	IncludeTermbases                    bool
	IncludeReports                      bool
	IncludeExistingReports              bool
	RecomputeAnalysisStatistics         bool
	RemoveAutomatedTranslationProviders bool
	RemoveServerBasedTMs                bool
	Comment                             string
}

// DefaultOptions returns a completely unconfigured options value, matching
// the packaging engine's library defaults.
func DefaultOptions() PackageOptions {
	return PackageOptions{ProjectTM: ProjectTMNone}
}

// ConservativeOptions returns options with every field explicitly pinned:
// nothing optional included and automated-translation-provider links
// removed. This is the starting point export applies its switches to.
func ConservativeOptions() PackageOptions {
	return PackageOptions{
		ProjectTM:                           ProjectTMNone,
		RemoveAutomatedTranslationProviders: true,
	}
}

// Normalize applies the report-forcing rules the packaging engine requires:
// creating a new project TM only takes effect when reports are included, and
// bundling existing reports implies bundling reports.
func (o PackageOptions) Normalize() PackageOptions {
	if o.ProjectTM == ProjectTMCreateNew {
		o.IncludeReports = true
	}
	if o.IncludeExistingReports {
		o.IncludeReports = true
	}
	return o
}
