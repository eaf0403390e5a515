package host

import (
	"context"
	"fmt"
	"time"

	"github.com/sergei-lamce/STraSAK/internal/project"
)

// hostProject is a project handle bound to the automation host.
type hostProject struct {
	path string
	info project.Info
}

func (p *hostProject) Info(ctx context.Context) (project.Info, error) {
	return p.info, nil
}

func (p *hostProject) TaskFiles(ctx context.Context, language string) ([]project.FileRef, error) {
	var res resultPayload
	err := run(ctx, request{Op: opTaskFiles, Project: p.path, Language: language}, nil, &res)
	if err != nil {
		return nil, fmt.Errorf("failed to list files for %s: %w", language, err)
	}

	refs := make([]project.FileRef, len(res.Files))
	for i, f := range res.Files {
		refs[i] = project.FileRef{ID: f.ID, Path: f.Path}
	}
	return refs, nil
}

func (p *hostProject) CreateManualTask(ctx context.Context, kind project.TaskKind, assignee string, due time.Time, files []project.FileRef) (project.Task, error) {
	req := request{
		Op:       opCreateTask,
		Project:  p.path,
		TaskKind: string(kind),
		Assignee: assignee,
		Files:    fileIDs(files),
	}
	// A zero due time means "no due date"; the field is omitted entirely so
	// the host does not mistake it for an actual date.
	if !due.IsZero() {
		req.DueDate = due.Format(time.RFC3339)
	}

	var res resultPayload
	if err := run(ctx, req, nil, &res); err != nil {
		return project.Task{}, fmt.Errorf("failed to create %s task: %w", kind, err)
	}
	return project.Task{ID: res.TaskID}, nil
}

func (p *hostProject) CreatePackage(ctx context.Context, req project.PackageRequest, events project.Events) (project.Package, error) {
	hreq := request{
		Op:      opCreatePackage,
		Project: p.path,
		TaskID:  req.TaskID,
		Name:    req.Name,
		Options: encodeOptions(req.Options),
	}

	var res resultPayload
	if err := run(ctx, hreq, events, &res); err != nil {
		return project.Package{}, fmt.Errorf("failed to create package %s: %w", req.Name, err)
	}
	return project.Package{ID: res.PackageID, Status: project.PackageStatus(res.Status)}, nil
}

func (p *hostProject) SavePackage(ctx context.Context, packageID, path string) error {
	err := run(ctx, request{Op: opSavePackage, Project: p.path, PackageID: packageID, Path: path}, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to save package to %s: %w", path, err)
	}
	return nil
}

func (p *hostProject) ImportReturnPackage(ctx context.Context, path string, events project.Events) error {
	err := run(ctx, request{Op: opImportReturn, Project: p.path, Path: path}, events, nil)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	return nil
}

func fileIDs(files []project.FileRef) []string {
	ids := make([]string, len(files))
	for i, f := range files {
		ids[i] = f.ID
	}
	return ids
}
