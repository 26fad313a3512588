package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"ghostconfig/internal/i18n"
	"ghostconfig/internal/model"
	"ghostconfig/internal/schema"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	sections := schema.Group(s.options, s.cfg.Config.Get)
	if sections == nil {
		sections = []model.Section{}
	}
	writeJSON(w, http.StatusOK, sections)
}

func (s *Server) handleColors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schema.CommonColors)
}

func (s *Server) handleFonts(w http.ResponseWriter, r *http.Request) {
	fonts, err := s.cfg.Schema.Fonts(r.Context())
	if err != nil {
		s.cfg.Log.Warn(r.Context(), "list fonts failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if fonts == nil {
		fonts = []string{}
	}
	writeJSON(w, http.StatusOK, fonts)
}

func (s *Server) handleI18n(w http.ResponseWriter, r *http.Request) {
	lang := s.cfg.Lang
	if al := strings.TrimSpace(r.Header.Get("Accept-Language")); al != "" {
		lang = i18n.Match(al)
	}
	writeJSON(w, http.StatusOK, i18n.Bundle(lang))
}

func (s *Server) handleConfigGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Config.Values())
}

func (s *Server) handleConfigPut(w http.ResponseWriter, r *http.Request) {
	var req model.ConfigUpdate
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Key = strings.TrimSpace(req.Key)
	if req.Key == "" {
		http.Error(w, "missing key", http.StatusBadRequest)
		return
	}
	if err := s.cfg.Config.Set(req.Key, req.Value); err != nil {
		s.cfg.Log.Error(r.Context(), "save config failed", "key", req.Key, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.cfg.Log.Info(r.Context(), "config saved", "key", req.Key, "value", req.Value)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	s.requestExit()
}
