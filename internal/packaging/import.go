package packaging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sergei-lamce/STraSAK/internal/console"
	"github.com/sergei-lamce/STraSAK/internal/fsutil"
	"github.com/sergei-lamce/STraSAK/internal/project"
)

// ImportArgs carries the validated inputs of one import invocation.
type ImportArgs struct {
	// Location is either one return-package file or a directory searched
	// recursively for return packages.
	Location string
}

// Importer merges return packages back into a project.
type Importer struct {
	proj project.Project
	out  *console.Reporter
}

// NewImporter creates an Importer over a resolved project, reporting to out.
func NewImporter(proj project.Project, out *console.Reporter) *Importer {
	return &Importer{proj: proj, out: out}
}

// Run imports every return package found at the location, sequentially and
// in discovery order. A failed import is reported and the remaining files
// still run. Zero matches is not an error.
func (i *Importer) Run(ctx context.Context, args ImportArgs) error {
	files, err := discoverReturnPackages(args.Location)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		i.out.Printf("No return packages found at %s", args.Location)
		return nil
	}

	for _, f := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		i.out.Printf("Importing %s", filepath.Base(f))
		if err := i.proj.ImportReturnPackage(ctx, f, i.out); err != nil {
			i.out.Failf("Import of %s failed: %v", filepath.Base(f), err)
			continue
		}
		i.out.Successf("Imported %s", filepath.Base(f))
	}
	return nil
}

// discoverReturnPackages expands a location into the list of return-package
// files to import. A file is taken as-is; a directory is searched
// recursively for the return-package extension.
func discoverReturnPackages(location string) ([]string, error) {
	st, err := os.Stat(location)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("package location not found: %s", location)
		}
		return nil, fmt.Errorf("failed to access package location %s: %w", location, err)
	}

	if !st.IsDir() {
		return []string{location}, nil
	}
	return fsutil.FindFilesByExtension(location, ReturnPackageExt)
}
