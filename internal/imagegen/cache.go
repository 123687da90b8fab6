package imagegen

import (
	"sync"
	"time"

	"github.com/jasonacox/vibescape/internal/models"
)

// SceneCache holds the most recent generated scene in memory, plus the
// single-flight flag that keeps concurrent refreshes from stacking up.
type SceneCache struct {
	mu         sync.RWMutex
	scene      *models.Scene
	generating bool
}

func NewSceneCache() *SceneCache {
	return &SceneCache{}
}

// Latest returns the most recent scene, or nil before the first
// generation completes.
func (c *SceneCache) Latest() *models.Scene {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scene
}

// Set publishes a new scene.
func (c *SceneCache) Set(scene *models.Scene) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scene = scene
}

// Age reports how long ago the cached scene was generated.
func (c *SceneCache) Age(now time.Time) (time.Duration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.scene == nil {
		return 0, false
	}
	return now.Sub(c.scene.CreatedAt), true
}

// BeginGeneration marks a generation as in progress. It returns false
// when one is already running.
func (c *SceneCache) BeginGeneration() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generating {
		return false
	}
	c.generating = true
	return true
}

func (c *SceneCache) EndGeneration() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generating = false
}

func (c *SceneCache) Generating() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generating
}
