package completion_helper

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/logger"
	"github.com/urfave/cli/v3"
)

// Out is where completion candidates go; the shell reads them from stdout.
var Out io.Writer = os.Stdout

// DefaultFlagComplete prints all flags of the current command so they are
// suggested even when the default urfave/cli completion misses them.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	printFlags(cmd)
}

// CatalogComplete suggests flags plus the branch names of the catalog, and
// the semesters of the branch already given with --branch.
func CatalogComplete(catalogs catalog.Provider) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		printFlags(cmd)

		cat, err := catalogs(ctx)
		if err != nil {
			logger.Debug(ctx, "completion without catalog", "error", err)
			return
		}

		branch := cmd.String("branch")
		if branch == "" {
			for _, b := range cat.Branches() {
				_, _ = fmt.Fprintln(Out, b)
			}
			return
		}
		for _, s := range cat.Semesters(branch) {
			_, _ = fmt.Fprintln(Out, s)
		}
	}
}

func printFlags(cmd *cli.Command) {
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(Out, "-"+name)
			} else {
				_, _ = fmt.Fprintln(Out, "--"+name)
			}
		}
	}
}
