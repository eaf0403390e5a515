package packaging

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sergei-lamce/STraSAK/internal/project"
)

// fakeProject records SDK calls so tests can assert on the call sequence
// without an automation host.
type fakeProject struct {
	info     project.Info
	statuses map[string]project.PackageStatus // by package name; default Completed

	taskCalls   []taskCall
	pkgRequests []project.PackageRequest
	saved       []string
	imported    []string
	importErr   map[string]error // by base name
}

type taskCall struct {
	kind     project.TaskKind
	assignee string
	due      time.Time
	files    []project.FileRef
}

func newFakeProject(name string, languages ...string) *fakeProject {
	return &fakeProject{
		info:      project.Info{Name: name, TargetLanguages: languages},
		statuses:  map[string]project.PackageStatus{},
		importErr: map[string]error{},
	}
}

func (f *fakeProject) Info(ctx context.Context) (project.Info, error) {
	return f.info, nil
}

func (f *fakeProject) TaskFiles(ctx context.Context, language string) ([]project.FileRef, error) {
	return []project.FileRef{{ID: language + "-1", Path: language + "/file.sdlxliff"}}, nil
}

func (f *fakeProject) CreateManualTask(ctx context.Context, kind project.TaskKind, assignee string, due time.Time, files []project.FileRef) (project.Task, error) {
	f.taskCalls = append(f.taskCalls, taskCall{kind: kind, assignee: assignee, due: due, files: files})
	return project.Task{ID: "task-" + assignee}, nil
}

func (f *fakeProject) CreatePackage(ctx context.Context, req project.PackageRequest, events project.Events) (project.Package, error) {
	f.pkgRequests = append(f.pkgRequests, req)
	status, ok := f.statuses[req.Name]
	if !ok {
		status = project.StatusCompleted
	}
	return project.Package{ID: "pkg-" + req.Name, Status: status}, nil
}

func (f *fakeProject) SavePackage(ctx context.Context, packageID, path string) error {
	f.saved = append(f.saved, path)
	return nil
}

func (f *fakeProject) ImportReturnPackage(ctx context.Context, path string, events project.Events) error {
	f.imported = append(f.imported, path)
	if err, ok := f.importErr[filepath.Base(path)]; ok {
		return err
	}
	return nil
}
