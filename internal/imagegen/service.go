package imagegen

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/jasonacox/vibescape/internal/metrics"
	"github.com/jasonacox/vibescape/internal/models"
	"github.com/jasonacox/vibescape/internal/season"
	"github.com/jasonacox/vibescape/internal/store"
	"github.com/jasonacox/vibescape/internal/textutil"
)

// maxPromptLength caps what goes to providers; generated prompts
// normally sit well under this.
const maxPromptLength = 500

// Service owns the refresh cycle: it picks a seasonal prompt, calls the
// provider, and publishes the encoded result to the scene cache.
type Service struct {
	blender  *season.Blender
	provider Provider
	cache    *SceneCache
	store    *store.Store
	ttl      time.Duration
	timeout  time.Duration
}

// NewService wires a blender and provider together. The store may be
// nil, in which case generation history is not persisted.
func NewService(blender *season.Blender, provider Provider, st *store.Store, ttl, timeout time.Duration) *Service {
	return &Service{
		blender:  blender,
		provider: provider,
		cache:    NewSceneCache(),
		store:    st,
		ttl:      ttl,
		timeout:  timeout,
	}
}

func (s *Service) Cache() *SceneCache { return s.cache }

// Stale reports whether the cached scene is older than the refresh TTL
// or absent entirely.
func (s *Service) Stale(now time.Time) bool {
	age, ok := s.cache.Age(now)
	return !ok || age >= s.ttl
}

// RefreshIfStale kicks off a background generation when the cached
// scene has expired. Callers are never blocked and at most one
// generation runs at a time.
func (s *Service) RefreshIfStale() {
	if !s.Stale(time.Now()) {
		return
	}
	if !s.cache.BeginGeneration() {
		return
	}

	go func() {
		defer s.cache.EndGeneration()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.generate(ctx); err != nil {
			log.Printf("imagegen: background generation failed: %v", err)
		}
	}()
}

// GenerateInitial produces the first scene synchronously so the page
// has something to show right after startup.
func (s *Service) GenerateInitial(ctx context.Context) error {
	if !s.cache.BeginGeneration() {
		return nil
	}
	defer s.cache.EndGeneration()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.generate(ctx)
}

func (s *Service) generate(ctx context.Context) error {
	prompt, seasonID, err := s.blender.PromptNow()
	if err != nil {
		return err
	}
	prompt = textutil.Truncate(textutil.CollapseWhitespace(prompt), maxPromptLength)

	metrics.SeasonsSelected.WithLabelValues(string(seasonID)).Inc()
	log.Printf("imagegen: generating %s scene via %s: %s", seasonID, s.provider.Name(), prompt)

	start := time.Now()
	raw, err := s.provider.Generate(ctx, prompt)
	duration := time.Since(start)
	if err != nil {
		metrics.ImageFailures.WithLabelValues(s.provider.Name()).Inc()
		s.record(seasonID, prompt, duration, 0, err)
		return err
	}

	imageData, err := EncodeWebImage(raw)
	if err != nil {
		metrics.ImageFailures.WithLabelValues(s.provider.Name()).Inc()
		s.record(seasonID, prompt, duration, 0, err)
		return err
	}

	s.cache.Set(&models.Scene{
		Prompt:    prompt,
		Season:    string(seasonID),
		ImageData: imageData,
		CreatedAt: time.Now(),
	})

	metrics.ImagesGenerated.WithLabelValues(s.provider.Name(), string(seasonID)).Inc()
	metrics.GenerationDuration.WithLabelValues(s.provider.Name()).Observe(duration.Seconds())
	s.record(seasonID, prompt, duration, len(imageData), nil)

	log.Printf("imagegen: cached %s scene in %.1fs (%d bytes)", seasonID, duration.Seconds(), len(imageData))
	return nil
}

// record persists the generation outcome. Storage failures are logged,
// not returned.
func (s *Service) record(seasonID season.ID, prompt string, duration time.Duration, size int, genErr error) {
	if s.store == nil {
		return
	}

	g := models.Generation{
		Season:          string(seasonID),
		Prompt:          prompt,
		Provider:        s.provider.Name(),
		Success:         genErr == nil,
		DurationSeconds: sql.NullFloat64{Float64: duration.Seconds(), Valid: true},
		CreatedAt:       time.Now(),
	}
	if genErr != nil {
		g.Error = sql.NullString{String: genErr.Error(), Valid: true}
	}
	if size > 0 {
		g.ImageSizeBytes = sql.NullInt64{Int64: int64(size), Valid: true}
	}

	if err := s.store.InsertGeneration(g); err != nil {
		log.Printf("imagegen: record generation: %v", err)
	}
}
