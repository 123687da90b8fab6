package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/jasonacox/vibescape/internal/season"
	"github.com/jasonacox/vibescape/internal/viewer"
)

// timestamp converts a time to Unix seconds with millisecond
// precision, the format the page's polling script compares.
func timestamp(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000.0
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: write response: %v", err)
	}
}

// sessionID returns the client-supplied session id, or derives a
// stable one from the client address and user agent.
func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return viewer.SessionID(host, r.UserAgent())
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// handleImage returns the cached scene immediately, kicking off a
// background refresh when it has gone stale. Requesting an image
// counts as viewer activity.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	s.tracker.Touch(sessionID(r))
	s.svc.RefreshIfStale()

	scene := s.svc.Cache().Latest()
	if scene == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"image_data": nil,
			"prompt":     "Generating first image...",
			"timestamp":  nil,
		})
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", s.cfg.RefreshSeconds))
	writeJSON(w, http.StatusOK, map[string]any{
		"image_data": scene.ImageData,
		"prompt":     scene.Prompt,
		"timestamp":  timestamp(scene.CreatedAt),
	})
}

// handleImageStatus lets the page check for a new scene without
// downloading the full payload.
func (s *Server) handleImageStatus(w http.ResponseWriter, r *http.Request) {
	scene := s.svc.Cache().Latest()
	if scene == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"available":   false,
			"timestamp":   nil,
			"age_seconds": nil,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"available":   true,
		"timestamp":   timestamp(scene.CreatedAt),
		"age_seconds": time.Since(scene.CreatedAt).Seconds(),
	})
}

func (s *Server) handleSeason(w http.ResponseWriter, r *http.Request) {
	weights := s.blender.ActiveSeasonsNow()
	active := make(map[string]float64, len(weights))
	for id, weight := range weights {
		active[string(id)] = weight
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"day_of_year":    s.blender.DayOfYearNow(),
		"active_seasons": active,
		"available_seasons": lo.Map(s.blender.Seasons(), func(id season.ID, _ int) string {
			return string(id)
		}),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"version":        s.cfg.Version,
		"image_provider": s.cfg.Provider,
	}
	switch s.cfg.Provider {
	case "swarmui":
		data["swarmui"] = s.cfg.Endpoint
		data["model"] = s.cfg.Model
	case "openai":
		data["openai_base"] = s.cfg.Endpoint
		data["model"] = s.cfg.Model
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	stats := map[string]any{
		"version":           s.cfg.Version,
		"image_provider":    s.cfg.Provider,
		"active_sessions":   s.tracker.Count(),
		"session_ttl_s":     int(viewer.SessionTTL.Seconds()),
		"current_connected": s.tracker.Count(),
		"peak_connected":    s.tracker.Peak(),
	}

	stats["images_generated"] = 0
	stats["images_failed"] = 0
	stats["generation_time_min_s"] = nil
	stats["generation_time_max_s"] = nil
	stats["generation_time_avg_s"] = nil
	if s.store != nil {
		gs, err := s.store.GenerationStats()
		if err != nil {
			log.Printf("api: generation stats: %v", err)
		} else {
			stats["images_generated"] = gs.Generated
			stats["images_failed"] = gs.Failed
			if gs.MinSeconds.Valid {
				stats["generation_time_min_s"] = gs.MinSeconds.Float64
			}
			if gs.MaxSeconds.Valid {
				stats["generation_time_max_s"] = gs.MaxSeconds.Float64
			}
			if gs.AvgSeconds.Valid {
				stats["generation_time_avg_s"] = gs.AvgSeconds.Float64
			}
		}

		if counts, err := s.store.SeasonCounts(); err != nil {
			log.Printf("api: season counts: %v", err)
		} else {
			stats["images_by_season"] = counts
		}
	}

	stats["last_activity_ts"] = nil
	stats["last_activity_age_s"] = nil
	if at, ok := s.tracker.LastActivity(); ok {
		stats["last_activity_ts"] = timestamp(at)
		stats["last_activity_age_s"] = now.Sub(at).Seconds()
	}

	scene := s.svc.Cache().Latest()
	stats["last_image_cached"] = scene != nil
	stats["last_image_ts"] = nil
	stats["last_image_age_s"] = nil
	if scene != nil {
		stats["last_image_ts"] = timestamp(scene.CreatedAt)
		stats["last_image_age_s"] = now.Sub(scene.CreatedAt).Seconds()
	}

	stats["favicon_ico_cached"] = s.icons != nil && len(s.icons.FaviconICO) > 0
	stats["apple_touch_cached"] = s.icons != nil && len(s.icons.AppleTouch) > 0
	stats["favicon_32_cached"] = s.icons != nil && len(s.icons.Favicon32) > 0

	writeJSON(w, http.StatusOK, stats)
}

// handleConnect registers a viewer session. The page calls this via
// navigator.sendBeacon on load.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	count := s.tracker.Touch(id)
	log.Printf("api: session connected: %s total=%d peak=%d", shortSession(id), count, s.tracker.Peak())
	writeJSON(w, http.StatusOK, map[string]any{
		"connected":  count,
		"session_id": id,
	})
}

func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	count := s.tracker.Disconnect(id)
	log.Printf("api: session disconnected: %s total=%d", shortSession(id), count)
	writeJSON(w, http.StatusOK, map[string]any{"connected": count})
}

func (s *Server) handleViewers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"connected": s.tracker.Count()})
}
