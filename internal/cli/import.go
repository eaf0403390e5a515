package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sergei-lamce/STraSAK/internal/console"
	"github.com/sergei-lamce/STraSAK/internal/host"
	"github.com/sergei-lamce/STraSAK/internal/packaging"
	"github.com/spf13/cobra"
)

var (
	importProject  string
	importLocation string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import return packages into a project",
	Long: `Import one .sdlrpx return package, or every return package found by
searching a directory recursively. Files are imported sequentially; a failed
import is reported and the remaining files still run.`,
	RunE: runImport,
}

func init() {
	f := importCmd.Flags()
	f.StringVarP(&importProject, "project", "p", "", "Path to the project file or its folder")
	f.StringVarP(&importLocation, "location", "l", "", "Return package file, or a directory searched recursively")
	importCmd.MarkFlagRequired("project")
	importCmd.MarkFlagRequired("location")
}

func runImport(cmd *cobra.Command, args []string) error {
	if !host.Available() {
		return fmt.Errorf("automation host %q not found; install the SDK host or set %s", host.Binary(), host.EnvBinary)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	proj, err := host.NewResolver().Resolve(ctx, importProject)
	if err != nil {
		return err
	}

	imp := packaging.NewImporter(proj, console.New(cmd.OutOrStdout()))
	return imp.Run(ctx, packaging.ImportArgs{Location: importLocation})
}
