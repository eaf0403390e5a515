package project

import "testing"

func TestConservativeOptions(t *testing.T) {
	o := ConservativeOptions()

	if o.ProjectTM != ProjectTMNone {
		t.Errorf("ProjectTM = %q, want %q", o.ProjectTM, ProjectTMNone)
	}
	if !o.RemoveAutomatedTranslationProviders {
		t.Error("RemoveAutomatedTranslationProviders = false, want true")
	}
	if o.IncludeAutoSuggestDictionaries || o.IncludeMainTMs || o.IncludeTermbases ||
		o.IncludeReports || o.IncludeExistingReports || o.RecomputeAnalysisStatistics ||
		o.RemoveServerBasedTMs {
		t.Errorf("conservative options include something optional: %+v", o)
	}
	if o.Comment != "" {
		t.Errorf("Comment = %q, want empty", o.Comment)
	}
}

func TestNormalizeForcesReports(t *testing.T) {
	tests := []struct {
		name        string
		opts        PackageOptions
		wantReports bool
	}{
		{
			name:        "create new TM forces reports on",
			opts:        PackageOptions{ProjectTM: ProjectTMCreateNew},
			wantReports: true,
		},
		{
			name:        "existing reports force reports on",
			opts:        PackageOptions{IncludeExistingReports: true},
			wantReports: true,
		},
		{
			name:        "both rules at once",
			opts:        PackageOptions{ProjectTM: ProjectTMCreateNew, IncludeExistingReports: true},
			wantReports: true,
		},
		{
			name:        "no forcing without triggers",
			opts:        PackageOptions{ProjectTM: ProjectTMUseExisting},
			wantReports: false,
		},
		{
			name:        "explicit reports survive",
			opts:        PackageOptions{IncludeReports: true},
			wantReports: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.Normalize()
			if got.IncludeReports != tt.wantReports {
				t.Errorf("Normalize().IncludeReports = %v, want %v", got.IncludeReports, tt.wantReports)
			}
			// Normalize must not touch anything else.
			if got.IncludeExistingReports != tt.opts.IncludeExistingReports {
				t.Errorf("Normalize() changed IncludeExistingReports")
			}
			if got.ProjectTM != tt.opts.ProjectTM {
				t.Errorf("Normalize() changed ProjectTM")
			}
		})
	}
}

func TestParseTaskKind(t *testing.T) {
	tests := []struct {
		input   string
		want    TaskKind
		wantErr bool
	}{
		{input: "Translate", want: TaskTranslate},
		{input: "Review", want: TaskReview},
		{input: "translate", wantErr: true},
		{input: "Proofread", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTaskKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTaskKind(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTaskKind(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTaskKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseProjectTMMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ProjectTMMode
		wantErr bool
	}{
		{input: "None", want: ProjectTMNone},
		{input: "UseExisting", want: ProjectTMUseExisting},
		{input: "CreateNew", want: ProjectTMCreateNew},
		{input: "createnew", wantErr: true},
		{input: "Merge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProjectTMMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseProjectTMMode(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProjectTMMode(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseProjectTMMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
