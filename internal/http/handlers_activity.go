package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bemviver/internal/core"
	"bemviver/internal/log"
)

// handleRegisterActivity stores one logged activity for the current
// user and invalidates the cached summary of its week.
func (s *Server) handleRegisterActivity(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusBadRequest, "Formato de requisição inválido")
		return
	}

	actType := sanitizeInput(r.Form.Get("type"))
	durationStr := sanitizeInput(r.Form.Get("duration"))
	intensity := core.Intensity(sanitizeInput(r.Form.Get("intensity")))
	date := parseDateOr(r.Form.Get("date"), core.Today())

	if actType == "" || durationStr == "" {
		writeError(w, http.StatusUnprocessableEntity, "Informe o tipo de atividade e a duração.")
		return
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration <= 0 {
		writeError(w, http.StatusUnprocessableEntity, "A duração deve ser um número de minutos maior que zero.")
		return
	}

	user, err := s.store.GetUser(r.Context())
	if errors.Is(err, core.ErrUserNotFound) {
		writeError(w, http.StatusUnprocessableEntity, "Cadastre seu perfil antes de registrar atividades.")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Profile read error", "error", err)
		writeError(w, http.StatusInternalServerError, "Erro ao carregar o perfil. Tente novamente.")
		return
	}

	activity := core.Activity{
		UserID:          user.ID,
		Type:            actType,
		DurationMinutes: duration,
		Intensity:       intensity,
		Date:            date,
	}

	id, err := s.tracker.RegisterActivity(r.Context(), activity)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrProfileRequired):
			writeError(w, http.StatusUnprocessableEntity, "Cadastre seu perfil antes de registrar atividades.")
		case errors.Is(err, core.ErrInvalidIntensity):
			writeError(w, http.StatusUnprocessableEntity, "Intensidade inválida: use leve, moderada ou intensa.")
		case errors.Is(err, core.ErrEmptyType), errors.Is(err, core.ErrInvalidDuration), errors.Is(err, core.ErrInvalidDate):
			writeError(w, http.StatusUnprocessableEntity, "Dados inválidos: verifique tipo, duração e data.")
		default:
			slog.ErrorContext(r.Context(), "Activity register error", "error", err, log.FieldActivityType, actType)
			writeError(w, http.StatusInternalServerError, "Erro ao salvar a atividade. Tente novamente.")
		}
		return
	}

	// The week containing the new activity is stale now.
	s.invalidateSummary(activity.Date)

	w.Header().Set("HX-Trigger", `{"activity:created": {"id": `+strconv.FormatInt(id, 10)+`, "date": "`+activity.Date.ISO()+`"}}`)
	writeSuccess(w, "Atividade registrada: "+actType+" ("+durationStr+" min)")
}

// handleWeeklySummary renders the weekly summary partial for the week
// containing the reference date (today when absent).
func (s *Server) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	ref := parseDateOr(r.URL.Query().Get("date"), core.Today())

	summary, err := s.getSummary(r.Context(), ref)
	if err != nil {
		slog.ErrorContext(r.Context(), "Weekly summary error", "error", err, "reference_date", ref.ISO())
		_, _ = w.Write([]byte(`<section id="weekly-summary" class="weekly-summary"><div class="placeholder">Erro carregando resumo semanal</div></section>`))
		return
	}

	data := struct {
		WeekStart    string
		WeekEnd      string
		TotalMinutes int
		DaysCount    int
	}{
		WeekStart:    summary.Week.Start.ISO(),
		WeekEnd:      summary.Week.End.ISO(),
		TotalMinutes: summary.TotalMinutes,
		DaysCount:    summary.DaysCount,
	}
	if err := s.templates.ExecuteTemplate(w, "weekly_summary.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "weekly_summary.html")
		_, _ = w.Write([]byte(`<section id="weekly-summary" class="weekly-summary"><div class="placeholder">Erro renderizando resumo</div></section>`))
	}
}

// handleActivityList renders the activity list partial for a period,
// defaulting to the current week.
func (s *Server) handleActivityList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	week := core.WeekOf(core.Today())
	start := parseDateOr(r.URL.Query().Get("start"), week.Start)
	end := parseDateOr(r.URL.Query().Get("end"), week.End)

	cctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	activities, err := s.store.ListBetween(cctx, start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Activity list error", "error", err, log.FieldPeriodStart, start.ISO(), log.FieldPeriodEnd, end.ISO())
		_, _ = w.Write([]byte(`<section id="activity-list" class="activity-list"><div class="placeholder">Erro carregando atividades</div></section>`))
		return
	}

	type item struct {
		Date            string
		Type            string
		DurationMinutes int
		Intensity       string
	}
	data := struct {
		Start string
		End   string
		Items []item
	}{Start: start.ISO(), End: end.ISO()}
	for _, a := range activities {
		data.Items = append(data.Items, item{
			Date:            a.Date.ISO(),
			Type:            a.Type,
			DurationMinutes: a.DurationMinutes,
			Intensity:       string(a.Intensity),
		})
	}

	if err := s.templates.ExecuteTemplate(w, "activity_list.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "activity_list.html")
		_, _ = w.Write([]byte(`<section id="activity-list" class="activity-list"><div class="placeholder">Erro renderizando atividades</div></section>`))
	}
}

// getSummary reads the weekly summary through the cache, keyed by the
// resolved week start.
func (s *Server) getSummary(ctx context.Context, ref core.Date) (core.WeeklySummary, error) {
	key := core.WeekOf(ref).Start.ISO()

	if data, found := s.summaryCache.Get(key); found {
		slog.DebugContext(ctx, "Summary cache hit", log.FieldWeekStart, key)
		return data, nil
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	summary, err := s.store.WeeklySummary(cctx, ref)
	if err != nil {
		return core.WeeklySummary{}, err
	}

	s.summaryCache.Set(key, summary)
	slog.DebugContext(ctx, "Summary cached", log.FieldWeekStart, key, "total_minutes", summary.TotalMinutes, "days_count", summary.DaysCount)
	return summary, nil
}

func (s *Server) invalidateSummary(d core.Date) {
	s.summaryCache.Delete(core.WeekOf(d).Start.ISO())
}
