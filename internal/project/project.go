// Package project defines the contract between strasak and the vendor
// project-automation SDK. Everything here is pure declaration: command and
// packaging code depend on these types without knowing how the SDK is
// reached. The concrete adapter lives in internal/host.
package project

import (
	"context"
	"time"
)

// Info describes a resolved project.
type Info struct {
	Name            string
	TargetLanguages []string
}

// FileRef identifies one project file within a target language.
type FileRef struct {
	ID   string
	Path string
}

// Task is a manual task created over a set of files.
type Task struct {
	ID string
}

// PackageStatus is reported by the packaging engine for a created package.
type PackageStatus string

// StatusCompleted is the only status under which a package may be saved.
const StatusCompleted PackageStatus = "Completed"

// Package is the result of a package-creation request.
type Package struct {
	ID     string
	Status PackageStatus
}

// PackageRequest names the task, package name and options for a creation call.
type PackageRequest struct {
	TaskID  string
	Name    string
	Options PackageOptions
}

// Project is a handle to a resolved project. All methods delegate to the
// automation host; the long-running ones accept an Events sink for progress
// and diagnostic reporting.
type Project interface {
	// Info returns the project name and its configured target languages.
	Info(ctx context.Context) (Info, error)

	// TaskFiles lists the project files belonging to one target language.
	TaskFiles(ctx context.Context, language string) ([]FileRef, error)

	// CreateManualTask opens a manual task over the given files. A zero due
	// time means the task has no due date.
	CreateManualTask(ctx context.Context, kind TaskKind, assignee string, due time.Time, files []FileRef) (Task, error)

	// CreatePackage builds a package for a previously created task.
	CreatePackage(ctx context.Context, req PackageRequest, events Events) (Package, error)

	// SavePackage persists a completed package to the given path.
	SavePackage(ctx context.Context, packageID, path string) error

	// ImportReturnPackage merges a return package back into the project.
	ImportReturnPackage(ctx context.Context, path string, events Events) error
}

// Resolver opens a project from a filesystem path.
type Resolver interface {
	Resolve(ctx context.Context, path string) (Project, error)
}
