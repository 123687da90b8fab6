package api

import (
	"fmt"
	"net/http"
)

// iconCacheSeconds is how long browsers may cache the static icons.
const iconCacheSeconds = 86400

func (s *Server) serveIcon(w http.ResponseWriter, data []byte, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", iconCacheSeconds))
	w.Write(data)
}

func (s *Server) handleFaviconICO(w http.ResponseWriter, r *http.Request) {
	if s.icons == nil || len(s.icons.FaviconICO) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "favicon not available"})
		return
	}
	s.serveIcon(w, s.icons.FaviconICO, "image/x-icon")
}

func (s *Server) handleFavicon32(w http.ResponseWriter, r *http.Request) {
	if s.icons == nil || len(s.icons.Favicon32) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "favicon not available"})
		return
	}
	s.serveIcon(w, s.icons.Favicon32, "image/png")
}

func (s *Server) handleAppleTouchIcon(w http.ResponseWriter, r *http.Request) {
	if s.icons == nil || len(s.icons.AppleTouch) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "apple icon not available"})
		return
	}
	s.serveIcon(w, s.icons.AppleTouch, "image/png")
}
