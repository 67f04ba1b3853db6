package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"bemviver/internal/core"
	"bemviver/internal/log"
	"bemviver/internal/report"
	"bemviver/internal/store"
)

// Reporter assembles report bundles from the store and renders them into
// export files under a configured directory.
type Reporter struct {
	store     store.Store
	exportDir string
}

func NewReporter(s store.Store, exportDir string) *Reporter {
	return &Reporter{store: s, exportDir: exportDir}
}

// BuildBundle produces the ready-to-render report bundle for a period.
// An absent profile is not an error here: the bundle just carries no
// user block.
func (r *Reporter) BuildBundle(ctx context.Context, start, end core.Date) (report.Bundle, error) {
	var user *core.User
	u, err := r.store.GetUser(ctx)
	switch {
	case err == nil:
		user = &u
	case errors.Is(err, core.ErrUserNotFound):
		// keep nil user
	default:
		return report.Bundle{}, fmt.Errorf("load profile for report: %w", err)
	}

	activities, err := r.store.ListBetween(ctx, start, end)
	if err != nil {
		return report.Bundle{}, fmt.Errorf("load activities for report: %w", err)
	}

	return report.Assemble(user, activities, start, end), nil
}

// ExportExcel renders the period as an xlsx file in the export directory
// and returns its path. Exporting an empty period is a user-facing
// validation error (core.ErrNoActivities), never a file on disk.
func (r *Reporter) ExportExcel(ctx context.Context, start, end core.Date) (string, error) {
	b, err := r.BuildBundle(ctx, start, end)
	if err != nil {
		return "", err
	}
	if len(b.Rows) == 0 {
		return "", core.ErrNoActivities
	}

	path := r.exportPath("atividades_bem_viver", "xlsx")
	if err := r.writeFile(path, func(f *os.File) error { return report.WriteExcel(b, f) }); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Excel report exported",
		log.FieldComponent, log.ComponentReport,
		log.FieldOperation, log.OpExport,
		log.FieldExportFormat, "xlsx",
		log.FieldExportPath, path,
		"rows", len(b.Rows),
		log.FieldPeriodStart, b.Header.PeriodStart,
		log.FieldPeriodEnd, b.Header.PeriodEnd)

	return path, nil
}

// ExportPDF renders the period as a printable pdf file and returns its
// path. Unlike Excel, an empty period still renders (with an explicit
// placeholder), matching the printable layout.
func (r *Reporter) ExportPDF(ctx context.Context, start, end core.Date) (string, error) {
	b, err := r.BuildBundle(ctx, start, end)
	if err != nil {
		return "", err
	}

	path := r.exportPath("relatorio_bem_viver", "pdf")
	if err := r.writeFile(path, func(f *os.File) error { return report.WritePDF(b, f) }); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "PDF report exported",
		log.FieldComponent, log.ComponentReport,
		log.FieldOperation, log.OpExport,
		log.FieldExportFormat, "pdf",
		log.FieldExportPath, path,
		"rows", len(b.Rows),
		log.FieldPeriodStart, b.Header.PeriodStart,
		log.FieldPeriodEnd, b.Header.PeriodEnd)

	return path, nil
}

func (r *Reporter) exportPath(prefix, ext string) string {
	name := fmt.Sprintf("%s_%d.%s", prefix, time.Now().UnixMilli(), ext)
	return filepath.Join(r.exportDir, name)
}

func (r *Reporter) writeFile(path string, render func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
