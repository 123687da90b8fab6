package api

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/jasonacox/vibescape/internal/season"
)

type indexData struct {
	Version       string
	PollMillis    template.JS
	InitialImage  template.JS
	InitialPrompt template.JS
	Palette       season.Palette
}

// handleIndex serves the viewer page. A cached scene is embedded so
// the page paints immediately; otherwise the splash screen shows
// until polling finds the first image.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	poll := s.cfg.PollSeconds
	if v := r.URL.Query().Get("refresh"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			poll = n
		}
	}

	initialImage := template.JS("null")
	initialPrompt := template.JS("null")
	if scene := s.svc.Cache().Latest(); scene != nil {
		// json.Marshal escapes <, > and & so the literals are safe
		// inside the script block.
		if b, err := json.Marshal(scene.ImageData); err == nil {
			initialImage = template.JS(b)
		}
		if b, err := json.Marshal(scene.Prompt); err == nil {
			initialPrompt = template.JS(b)
		}
	}

	data := indexData{
		Version:       s.cfg.Version,
		PollMillis:    template.JS(strconv.Itoa(poll * 1000)),
		InitialImage:  initialImage,
		InitialPrompt: initialPrompt,
		Palette:       s.currentPalette(),
	}

	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("api: render index: %v", err)
	}
}

// currentPalette picks the scheme of the dominant active season, with
// a lexicographic tie-break so renders are stable within a day.
func (s *Server) currentPalette() season.Palette {
	weights := s.blender.ActiveSeasonsNow()

	var bestID season.ID
	bestWeight := -1.0
	for id, weight := range weights {
		if weight > bestWeight || (weight == bestWeight && string(id) < string(bestID)) {
			bestID, bestWeight = id, weight
		}
	}
	if bestID == "" {
		return season.DefaultPalette
	}
	return season.PaletteFor(bestID)
}
