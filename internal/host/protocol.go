package host

import "github.com/sergei-lamce/STraSAK/internal/project"

// Operation names understood by the automation host.
const (
	opResolve       = "resolve"
	opTaskFiles     = "task-files"
	opCreateTask    = "create-task"
	opCreatePackage = "create-package"
	opSavePackage   = "save-package"
	opImportReturn  = "import-return-package"
)

// request is the JSON document sent to the host on stdin.
type request struct {
	Op        string          `json:"op"`
	Project   string          `json:"project"`
	Language  string          `json:"language,omitempty"`
	TaskKind  string          `json:"taskKind,omitempty"`
	Assignee  string          `json:"assignee,omitempty"`
	DueDate   string          `json:"dueDate,omitempty"`
	Files     []string        `json:"files,omitempty"`
	TaskID    string          `json:"taskId,omitempty"`
	Name      string          `json:"name,omitempty"`
	PackageID string          `json:"packageId,omitempty"`
	Path      string          `json:"path,omitempty"`
	Options   *optionsPayload `json:"options,omitempty"`
}

// optionsPayload mirrors project.PackageOptions on the wire.
type optionsPayload struct {
	ProjectTranslationMemory             string `json:"projectTranslationMemory"`
	IncludeAutoSuggestDictionaries       bool   `json:"includeAutoSuggestDictionaries"`
	IncludeMainTranslationMemories       bool   `json:"includeMainTranslationMemories"`
	IncludeTermbases                     bool   `json:"includeTermbases"`
	IncludeReports                       bool   `json:"includeReports"`
	IncludeExistingReports               bool   `json:"includeExistingReports"`
	RecomputeAnalysisStatistics          bool   `json:"recomputeAnalysisStatistics"`
	RemoveAutomatedTranslationProviders  bool   `json:"removeAutomatedTranslationProviders"`
	RemoveServerBasedTranslationMemories bool   `json:"removeServerBasedTranslationMemories"`
	Comment                              string `json:"comment,omitempty"`
}

func encodeOptions(o project.PackageOptions) *optionsPayload {
	return &optionsPayload{
		ProjectTranslationMemory:             string(o.ProjectTM),
		IncludeAutoSuggestDictionaries:       o.IncludeAutoSuggestDictionaries,
		IncludeMainTranslationMemories:       o.IncludeMainTMs,
		IncludeTermbases:                     o.IncludeTermbases,
		IncludeReports:                       o.IncludeReports,
		IncludeExistingReports:               o.IncludeExistingReports,
		RecomputeAnalysisStatistics:          o.RecomputeAnalysisStatistics,
		RemoveAutomatedTranslationProviders:  o.RemoveAutomatedTranslationProviders,
		RemoveServerBasedTranslationMemories: o.RemoveServerBasedTMs,
		Comment:                              o.Comment,
	}
}

// event is one JSON line on the host's stdout.
type event struct {
	Type      string         `json:"type"`
	Percent   int            `json:"percent,omitempty"`
	Status    string         `json:"status,omitempty"`
	Source    string         `json:"source,omitempty"`
	Level     string         `json:"level,omitempty"`
	Text      string         `json:"text,omitempty"`
	Exception string         `json:"exception,omitempty"`
	Result    *resultPayload `json:"result,omitempty"`
}

// resultPayload carries the operation-specific result fields; each
// operation fills only the fields it defines.
type resultPayload struct {
	Name            string        `json:"name,omitempty"`
	TargetLanguages []string      `json:"targetLanguages,omitempty"`
	Files           []filePayload `json:"files,omitempty"`
	TaskID          string        `json:"taskId,omitempty"`
	PackageID       string        `json:"packageId,omitempty"`
	Status          string        `json:"status,omitempty"`
}

type filePayload struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}
