package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sergei-lamce/STraSAK/internal/console"
	"github.com/sergei-lamce/STraSAK/internal/host"
	"github.com/sergei-lamce/STraSAK/internal/packaging"
	"github.com/sergei-lamce/STraSAK/internal/project"
	"github.com/spf13/cobra"
)

var (
	exportProject   string
	exportOutput    string
	exportLanguages string
	exportTaskType  string
	exportProjectTM string
	exportComment   string

	exportIncludeAutoSuggest     bool
	exportIncludeMainTMs         bool
	exportIncludeTermbases       bool
	exportIncludeReports         bool
	exportIncludeExistingReports bool
	exportRecomputeStats         bool
	exportRemoveServerTMs        bool
	exportKeepATProviders        bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Create translation packages for a project's target languages",
	Long: `Create one .sdlppx package per target language, each bundling the
language's files under a manual task. Packages are named
<project>_<language> and written to the output directory; a language whose
package is not completed is reported and skipped without aborting the rest.`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportProject, "project", "p", "", "Path to the project file or its folder")
	f.StringVarP(&exportOutput, "output", "o", "", "Directory to write packages to (created if missing)")
	f.StringVarP(&exportLanguages, "languages", "l", "", "Target language codes, split on space/semicolon/comma (default: all)")
	f.StringVar(&exportTaskType, "task-type", string(project.TaskTranslate), "Task type: Translate|Review")
	f.StringVar(&exportProjectTM, "project-tm", string(project.ProjectTMNone), "Project TM handling: None|UseExisting|CreateNew")
	f.StringVar(&exportComment, "comment", "", "Package comment")
	f.BoolVar(&exportIncludeAutoSuggest, "include-autosuggest", false, "Include AutoSuggest dictionaries")
	f.BoolVar(&exportIncludeMainTMs, "include-main-tms", false, "Include main translation memories")
	f.BoolVar(&exportIncludeTermbases, "include-termbases", false, "Include termbases")
	f.BoolVar(&exportIncludeReports, "include-reports", false, "Include analysis reports")
	f.BoolVar(&exportIncludeExistingReports, "include-existing-reports", false, "Include existing reports (implies --include-reports)")
	f.BoolVar(&exportRecomputeStats, "recompute-stats", false, "Recompute analysis statistics before packaging")
	f.BoolVar(&exportRemoveServerTMs, "remove-server-tms", false, "Strip server-based TM links from the package")
	f.BoolVar(&exportKeepATProviders, "keep-at-providers", false, "Keep automated translation provider links (stripped by default)")
	exportCmd.MarkFlagRequired("project")
	exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	// Enum validation happens before the host is touched.
	kind, err := project.ParseTaskKind(exportTaskType)
	if err != nil {
		return err
	}
	opts, err := buildExportOptions()
	if err != nil {
		return err
	}

	if !host.Available() {
		return fmt.Errorf("automation host %q not found; install the SDK host or set %s", host.Binary(), host.EnvBinary)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	proj, err := host.NewResolver().Resolve(ctx, exportProject)
	if err != nil {
		return err
	}

	exp := packaging.NewExporter(proj, console.New(cmd.OutOrStdout()))
	return exp.Run(ctx, packaging.ExportArgs{
		OutputDir: exportOutput,
		Languages: exportLanguages,
		TaskKind:  kind,
		Options:   opts,
	})
}

// buildExportOptions maps the inclusion/removal switches onto the
// conservative option defaults.
func buildExportOptions() (project.PackageOptions, error) {
	mode, err := project.ParseProjectTMMode(exportProjectTM)
	if err != nil {
		return project.PackageOptions{}, err
	}

	opts := project.ConservativeOptions()
	opts.ProjectTM = mode
	opts.Comment = exportComment
	opts.IncludeAutoSuggestDictionaries = exportIncludeAutoSuggest
	opts.IncludeMainTMs = exportIncludeMainTMs
	opts.IncludeTermbases = exportIncludeTermbases
	opts.IncludeReports = exportIncludeReports
	opts.IncludeExistingReports = exportIncludeExistingReports
	opts.RecomputeAnalysisStatistics = exportRecomputeStats
	opts.RemoveServerBasedTMs = exportRemoveServerTMs
	opts.RemoveAutomatedTranslationProviders = !exportKeepATProviders
	return opts, nil
}
