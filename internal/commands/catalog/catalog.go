package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/commands/completion_helper"
	"github.com/thomas-vilte/spicalc/internal/config"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/session"
	"github.com/thomas-vilte/spicalc/internal/ui"
	"github.com/urfave/cli/v3"
)

type CatalogCommandFactory struct {
	catalogs catalog.Provider
	out      io.Writer
}

func NewCatalogCommandFactory(catalogs catalog.Provider) *CatalogCommandFactory {
	return &CatalogCommandFactory{
		catalogs: catalogs,
		out:      os.Stdout,
	}
}

func (f *CatalogCommandFactory) WithOutput(w io.Writer) *CatalogCommandFactory {
	f.out = w
	return f
}

func (f *CatalogCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: t.GetMessage("catalog.usage", 0, nil),
		Commands: []*cli.Command{
			f.newBranchesCommand(t),
			f.newSemestersCommand(t, cfg),
			f.newCoursesCommand(t, cfg),
		},
	}
}

func (f *CatalogCommandFactory) newBranchesCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "branches",
		Usage:         t.GetMessage("catalog.branches_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, _ *cli.Command) error {
			cat, err := f.catalogs(ctx)
			if err != nil {
				return err
			}

			ui.PrintSectionBanner(f.out, t.GetMessage("catalog.branches_title", 0, map[string]interface{}{
				"Source": cat.Source(),
			}))
			if cat.Len() == 0 {
				ui.PrintWarning(f.out, t.GetMessage("catalog.no_branches", 0, nil))
				return nil
			}
			for _, b := range cat.Branches() {
				n := len(cat.Semesters(b))
				ui.PrintKeyValue(f.out, b, t.GetMessage("catalog.semester_count", n, map[string]interface{}{
					"Count": n,
				}))
			}
			return nil
		},
	}
}

func branchFlag(t *i18n.Translations) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "branch",
		Aliases: []string{"b"},
		Usage:   t.GetMessage("calc.flag_branch", 0, nil),
	}
}

// selectBranch opens a session on the requested branch, falling back to the
// configured default and then to the catalog's first branch.
func selectBranch(ctx context.Context, cat *catalog.Catalog, cmd *cli.Command, cfg *config.Config) *session.Session {
	sess := session.New(ctx, cat)
	branch := cmd.String("branch")
	if branch == "" {
		branch = cfg.Branch()
	}
	if branch != "" {
		sess.SelectBranch(branch)
	}
	return sess
}

func (f *CatalogCommandFactory) newSemestersCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "semesters",
		Usage:         t.GetMessage("catalog.semesters_usage", 0, nil),
		ShellComplete: completion_helper.CatalogComplete(f.catalogs),
		Flags:         []cli.Flag{branchFlag(t)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := f.catalogs(ctx)
			if err != nil {
				return err
			}

			sess := selectBranch(ctx, cat, cmd, cfg)
			ui.PrintSectionBanner(f.out, t.GetMessage("catalog.semesters_title", 0, map[string]interface{}{
				"Branch": sess.Branch(),
			}))

			semesters := sess.Semesters()
			if len(semesters) == 0 {
				ui.PrintWarning(f.out, t.GetMessage("catalog.no_semesters", 0, nil))
				return nil
			}
			for _, s := range semesters {
				courses := cat.Courses(sess.Branch(), s)
				_, _ = fmt.Fprintf(f.out, "  %s  %s\n", ui.Strong.Sprint(s), t.GetMessage("catalog.course_count", len(courses), map[string]interface{}{
					"Count": len(courses),
				}))
			}
			return nil
		},
	}
}

func (f *CatalogCommandFactory) newCoursesCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "courses",
		Usage:         t.GetMessage("catalog.courses_usage", 0, nil),
		ShellComplete: completion_helper.CatalogComplete(f.catalogs),
		Flags: []cli.Flag{
			branchFlag(t),
			&cli.StringFlag{
				Name:    "semester",
				Aliases: []string{"s"},
				Usage:   t.GetMessage("calc.flag_semester", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := f.catalogs(ctx)
			if err != nil {
				return err
			}

			sess := selectBranch(ctx, cat, cmd, cfg)
			semester := sess.Semester()
			if s := cmd.String("semester"); s != "" {
				semester = s
				if !sess.SelectSemester(s) {
					ui.PrintSectionBanner(f.out, t.GetMessage("report.title", 0, map[string]interface{}{
						"Branch":   sess.Branch(),
						"Semester": s,
					}))
					ui.RenderCourseList(f.out, nil, t)
					return nil
				}
			}

			ui.PrintSectionBanner(f.out, t.GetMessage("report.title", 0, map[string]interface{}{
				"Branch":   sess.Branch(),
				"Semester": ui.SemesterLabel(semester),
			}))
			ui.RenderCourseList(f.out, sess.Courses(), t)
			return nil
		},
	}
}
