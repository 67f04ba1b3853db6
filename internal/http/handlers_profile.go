package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bemviver/internal/core"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Today string
	}{Today: core.Today().ISO()}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleSaveProfile validates and upserts the single user profile. The
// existing profile's id is loaded first, so saving always updates in
// place once a profile exists.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusBadRequest, "Formato de requisição inválido")
		return
	}

	name := sanitizeInput(r.Form.Get("name"))
	ageStr := sanitizeInput(r.Form.Get("age"))
	weightStr := sanitizeInput(r.Form.Get("weight"))
	heightStr := sanitizeInput(r.Form.Get("height"))
	notes := sanitizeInput(r.Form.Get("health_notes"))

	if name == "" || ageStr == "" || weightStr == "" || heightStr == "" {
		writeError(w, http.StatusUnprocessableEntity, "Preencha nome, idade, peso e altura.")
		return
	}

	age, ageErr := strconv.Atoi(ageStr)
	weight, weightErr := parseDecimal(weightStr)
	heightM, heightErr := parseDecimal(heightStr)
	if ageErr != nil || weightErr != nil || heightErr != nil {
		writeError(w, http.StatusUnprocessableEntity, "Idade, peso e altura devem ser numéricos.")
		return
	}

	user := core.User{
		Name:        name,
		Age:         age,
		WeightKg:    weight,
		HeightCm:    core.HeightCmFromMeters(heightM),
		HealthNotes: notes,
	}

	// Create collapses into update once a profile exists.
	if existing, err := s.store.GetUser(r.Context()); err == nil {
		user.ID = existing.ID
	}

	id, err := s.tracker.SaveProfile(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmptyName), errors.Is(err, core.ErrInvalidAge),
			errors.Is(err, core.ErrInvalidWeight), errors.Is(err, core.ErrInvalidHeight):
			writeError(w, http.StatusUnprocessableEntity, "Dados inválidos: verifique nome, idade, peso e altura.")
		default:
			slog.ErrorContext(r.Context(), "Profile save error", "error", err)
			writeError(w, http.StatusInternalServerError, "Erro ao salvar o perfil. Tente novamente.")
		}
		return
	}

	w.Header().Set("HX-Trigger", `{"profile:saved": {"id": `+strconv.FormatInt(id, 10)+`}}`)
	writeSuccess(w, "Dados de perfil salvos com sucesso!")
}

// handleProfilePartial renders the saved-profile card.
func (s *Server) handleProfilePartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	user, err := s.store.GetUser(r.Context())
	if errors.Is(err, core.ErrUserNotFound) {
		_, _ = w.Write([]byte(`<div id="profile-card" class="placeholder">Nenhum usuário cadastrado.</div>`))
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Profile read error", "error", err)
		_, _ = w.Write([]byte(`<div id="profile-card" class="placeholder">Erro carregando perfil</div>`))
		return
	}

	data := struct {
		Name        string
		Age         int
		WeightKg    float64
		HeightM     string
		HealthNotes string
	}{
		Name:        user.Name,
		Age:         user.Age,
		WeightKg:    user.WeightKg,
		HeightM:     strconv.FormatFloat(user.HeightMeters(), 'f', 2, 64),
		HealthNotes: user.HealthNotes,
	}
	if err := s.templates.ExecuteTemplate(w, "profile_card.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "profile_card.html")
		_, _ = w.Write([]byte(`<div id="profile-card" class="placeholder">Erro renderizando perfil</div>`))
	}
}
