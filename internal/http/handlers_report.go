package http

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"bemviver/internal/core"
	"bemviver/internal/log"
)

// handleExportExcel generates an xlsx report for the requested period
// and serves it as a download.
func (s *Server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	start, end, ok := s.parseReportPeriod(w, r)
	if !ok {
		return
	}

	path, err := s.reporter.ExportExcel(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, core.ErrNoActivities) {
			writeError(w, http.StatusUnprocessableEntity, "Nenhuma atividade para exportar.")
			return
		}
		slog.ErrorContext(r.Context(), "Excel export error", "error", err, log.FieldPeriodStart, start.ISO(), log.FieldPeriodEnd, end.ISO())
		writeError(w, http.StatusInternalServerError, "Erro ao exportar. Tente novamente.")
		return
	}

	serveDownload(w, r, path, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// handleExportPDF generates a pdf report for the requested period and
// serves it as a download. Empty periods still render, with an explicit
// placeholder in the document.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	start, end, ok := s.parseReportPeriod(w, r)
	if !ok {
		return
	}

	path, err := s.reporter.ExportPDF(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "PDF export error", "error", err, log.FieldPeriodStart, start.ISO(), log.FieldPeriodEnd, end.ISO())
		writeError(w, http.StatusInternalServerError, "Erro ao exportar. Tente novamente.")
		return
	}

	serveDownload(w, r, path, "application/pdf")
}

func (s *Server) parseReportPeriod(w http.ResponseWriter, r *http.Request) (core.Date, core.Date, bool) {
	if !requirePost(w, r) {
		return core.Date{}, core.Date{}, false
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusBadRequest, "Formato de requisição inválido")
		return core.Date{}, core.Date{}, false
	}

	start, errStart := core.ParseDate(r.Form.Get("start"))
	end, errEnd := core.ParseDate(r.Form.Get("end"))
	if errStart != nil || errEnd != nil {
		writeError(w, http.StatusUnprocessableEntity, "Informe o período com datas válidas (AAAA-MM-DD).")
		return core.Date{}, core.Date{}, false
	}
	return start, end, true
}

// serveDownload offers a generated report file through the browser's
// download mechanism.
func serveDownload(w http.ResponseWriter, r *http.Request, path, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}
