// Package packaging implements the export and import procedures over a
// resolved project. Both process their items sequentially and treat
// individual failures as reportable rather than fatal, so one bad language
// or return package never aborts the rest of the batch.
package packaging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sergei-lamce/STraSAK/internal/console"
	"github.com/sergei-lamce/STraSAK/internal/lang"
	"github.com/sergei-lamce/STraSAK/internal/project"
)

// PackageExt is the file extension of outgoing project packages.
const PackageExt = ".sdlppx"

// ReturnPackageExt is the file extension of return packages.
const ReturnPackageExt = ".sdlrpx"

// ExportArgs carries the validated inputs of one export invocation.
type ExportArgs struct {
	// OutputDir receives one package file per exported language. Created if
	// missing.
	OutputDir string

	// Languages is the raw language filter; empty means every target
	// language the project is configured with.
	Languages string

	TaskKind project.TaskKind
	Options  project.PackageOptions
}

// Exporter creates one package per target language.
type Exporter struct {
	proj project.Project
	out  *console.Reporter
}

// NewExporter creates an Exporter over a resolved project, reporting to out.
func NewExporter(proj project.Project, out *console.Reporter) *Exporter {
	return &Exporter{proj: proj, out: out}
}

// Run executes the export: one manual task and one package per resolved
// target language, saved as <project>_<code>.sdlppx. It returns an error
// only for failures that invalidate the whole invocation; per-language
// failures are printed and the remaining languages still run.
func (e *Exporter) Run(ctx context.Context, args ExportArgs) error {
	info, err := e.proj.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to read project info: %w", err)
	}

	if err := os.MkdirAll(args.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	languages := lang.Resolve(args.Languages, info.TargetLanguages)
	if len(languages) == 0 {
		e.out.Printf("Project %s has no target languages.", info.Name)
		return nil
	}

	opts := args.Options.Normalize()

	for _, l := range languages {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		e.exportLanguage(ctx, info.Name, l, args, opts)
	}
	return nil
}

// exportLanguage creates and saves the package for one language. Failures
// are reported on the console and leave no package file behind.
func (e *Exporter) exportLanguage(ctx context.Context, projectName string, l lang.Descriptor, args ExportArgs, opts project.PackageOptions) {
	name := fmt.Sprintf("%s_%s", projectName, l.Code)
	e.out.Printf("Creating package %s", name)

	files, err := e.proj.TaskFiles(ctx, l.Code)
	if err != nil {
		e.out.Failf("Package %s failed: %v", name, err)
		return
	}

	task, err := e.proj.CreateManualTask(ctx, args.TaskKind, l.Assignee(), time.Time{}, files)
	if err != nil {
		e.out.Failf("Package %s failed: %v", name, err)
		return
	}

	pkg, err := e.proj.CreatePackage(ctx, project.PackageRequest{
		TaskID:  task.ID,
		Name:    name,
		Options: opts,
	}, e.out)
	if err != nil {
		e.out.Failf("Package %s failed: %v", name, err)
		return
	}
	if pkg.Status != project.StatusCompleted {
		e.out.Failf("Package %s was not completed (status %s), nothing saved", name, pkg.Status)
		return
	}

	path := filepath.Join(args.OutputDir, name+PackageExt)
	if err := e.proj.SavePackage(ctx, pkg.ID, path); err != nil {
		e.out.Failf("Package %s failed: %v", name, err)
		return
	}
	e.out.Successf("Package saved: %s", path)
}
