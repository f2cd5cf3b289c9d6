// ===== internal/web/handlers.go =====
package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ulagen/internal/ntp"
	"ulagen/internal/ula"
	"ulagen/pkg/models"
)

// ULAResponse is the JSON shape of a successful generation
type ULAResponse struct {
	ULA       string `json:"ula"`
	MAC       string `json:"mac"`
	Vendor    string `json:"vendor"`
	Timestamp string `json:"timestamp"`
	EUI64     string `json:"eui64"`
}

// ErrorResponse is the JSON shape of a failed generation
type ErrorResponse struct {
	Error string `json:"error"`
}

// generate runs the pipeline for a request, honoring an optional
// literal timestamp override
func (s *Server) generate(mac, timeValue string) (*models.Result, error) {
	gen := *s.gen
	if timeValue != "" {
		gen.Time = &ntp.LiteralSource{Value: timeValue}
	}
	return gen.Generate(mac)
}

// handleRoot renders the interactive form page
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	log.Printf("Request from %s: %s", r.RemoteAddr, r.URL.String())

	data := PageData{Status: s.store.Status()}
	if mac := r.FormValue("mac"); mac != "" {
		res, err := s.generate(mac, r.FormValue("time"))
		if err != nil {
			data.Error = err.Error()
		} else {
			data.Result = res
		}
		data.MAC = mac
	}

	if err := s.tmpl.Execute(w, data); err != nil {
		log.Printf("Failed to execute page template: %v", err)
	}
}

// handleULAAPI handles JSON generation requests
func (s *Server) handleULAAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	mac := r.FormValue("mac")
	if mac == "" {
		writeError(w, http.StatusBadRequest, "missing mac parameter")
		return
	}

	res, err := s.generate(mac, r.FormValue("time"))
	if err != nil {
		log.Printf("Generation failed for %q: %v", mac, err)
		writeError(w, statusFor(err), err.Error())
		return
	}

	json.NewEncoder(w).Encode(ULAResponse{
		ULA:       res.ULA,
		MAC:       res.MAC,
		Vendor:    res.Vendor,
		Timestamp: res.Timestamp,
		EUI64:     res.EUI64,
	})
}

// handleRegistryAPI reports the loaded registry state
func (s *Server) handleRegistryAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(s.store.Status())
}

// statusFor maps the error taxonomy onto HTTP status codes
func statusFor(err error) int {
	var validation *ula.ValidationError
	var notFound *ula.VendorNotFoundError
	var acquisition *ula.AcquisitionError

	switch {
	case errors.As(err, &validation), errors.Is(err, ula.ErrGroupAddress):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &acquisition):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
