package calc

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/commands/completion_helper"
	"github.com/thomas-vilte/spicalc/internal/config"
	apperrors "github.com/thomas-vilte/spicalc/internal/errors"
	"github.com/thomas-vilte/spicalc/internal/grading"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/logger"
	"github.com/thomas-vilte/spicalc/internal/models"
	"github.com/thomas-vilte/spicalc/internal/session"
	"github.com/thomas-vilte/spicalc/internal/ui"
	"github.com/urfave/cli/v3"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type CalcCommandFactory struct {
	catalogs catalog.Provider
	out      io.Writer
}

func NewCalcCommandFactory(catalogs catalog.Provider) *CalcCommandFactory {
	return &CalcCommandFactory{
		catalogs: catalogs,
		out:      os.Stdout,
	}
}

// WithOutput redirects the report, mainly for tests.
func (f *CalcCommandFactory) WithOutput(w io.Writer) *CalcCommandFactory {
	f.out = w
	return f
}

func (f *CalcCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "calc",
		Aliases:       []string{"spi"},
		Usage:         t.GetMessage("calc.usage", 0, nil),
		ShellComplete: completion_helper.CatalogComplete(f.catalogs),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "branch",
				Aliases: []string{"b"},
				Usage:   t.GetMessage("calc.flag_branch", 0, nil),
			},
			&cli.StringFlag{
				Name:    "semester",
				Aliases: []string{"s"},
				Usage:   t.GetMessage("calc.flag_semester", 0, nil),
			},
			&cli.StringSliceFlag{
				Name:    "grade",
				Aliases: []string{"g"},
				Usage:   t.GetMessage("calc.flag_grade", 0, nil),
			},
			&cli.StringFlag{
				Name:  "prev-spi",
				Usage: t.GetMessage("calc.flag_prev_spi", 0, nil),
			},
			&cli.StringFlag{
				Name:  "prev-credits",
				Usage: t.GetMessage("calc.flag_prev_credits", 0, nil),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   outputText,
				Usage:   t.GetMessage("calc.flag_output", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := strings.ToLower(strings.TrimSpace(cmd.String("output")))
			if format != outputText && format != outputJSON {
				return apperrors.ErrInvalidOutputFormat.WithContext("output", format)
			}

			cat, err := f.catalogs(ctx)
			if err != nil {
				return err
			}

			report := f.evaluate(ctx, cmd, cat, cfg, t)

			if format == outputJSON {
				return ui.WriteReportJSON(f.out, report)
			}
			ui.RenderReport(f.out, report, t)
			return nil
		},
	}
}

func (f *CalcCommandFactory) evaluate(ctx context.Context, cmd *cli.Command, cat *catalog.Catalog, cfg *config.Config, t *i18n.Translations) models.Report {
	sess := session.New(ctx, cat)

	branch := cmd.String("branch")
	if branch == "" {
		branch = cfg.Branch()
	}
	if branch != "" {
		if !cat.HasBranch(branch) {
			logger.Warn(ctx, t.GetMessage("calc.unknown_branch", 0, map[string]interface{}{
				"Branch": branch,
			}), "branch", branch)
		}
		sess.SelectBranch(branch)
	}

	semester := cmd.String("semester")
	missed := semester != "" && !sess.SelectSemester(semester)
	if missed {
		logger.Warn(ctx, t.GetMessage("calc.unknown_semester", 0, map[string]interface{}{
			"Branch":   sess.Branch(),
			"Semester": semester,
		}), "branch", sess.Branch(), "semester", semester)
	}

	ctx = logger.With(ctx, "branch", sess.Branch(), "semester", sess.Semester())

	known := make(map[string]bool)
	for _, c := range sess.Courses() {
		known[c.Code] = true
	}

	for _, pair := range cmd.StringSlice("grade") {
		code, symbol, ok := parseGrade(pair)
		if !ok {
			logger.Warn(ctx, t.GetMessage("calc.malformed_grade", 0, map[string]interface{}{
				"Value": pair,
			}))
			continue
		}
		if symbol != "" && !grading.IsValid(symbol) {
			logger.Warn(ctx, t.GetMessage("calc.unrecognized_grade", 0, map[string]interface{}{
				"Code":  code,
				"Grade": symbol,
			}))
		}
		if !known[code] {
			logger.Info(ctx, "grade for a course outside the selection", "code", code)
		}
		sess.SetGrade(code, symbol)
	}

	sess.SetPreviousSPI(cmd.String("prev-spi"))
	sess.SetPreviousCredits(cmd.String("prev-credits"))

	if missed {
		report := grading.Evaluate(nil, nil, sess.Prior())
		report.Branch = sess.Branch()
		report.Semester = semester
		return report
	}

	report := sess.Snapshot()
	logger.Debug(ctx, "report computed",
		"branch", report.Branch,
		"semester", report.Semester,
		"courses", len(report.Courses),
		"spi", report.SPI,
		"cpi", report.CPI)
	return report
}

// parseGrade splits CODE=GRADE. The grade may be blank to leave a course
// unassigned.
func parseGrade(pair string) (code, symbol string, ok bool) {
	code, symbol, found := strings.Cut(pair, "=")
	code = strings.TrimSpace(code)
	if !found || code == "" {
		return "", "", false
	}
	return code, grading.Normalize(symbol), true
}
