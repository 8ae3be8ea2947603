package cde

import (
	"fmt"

	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
	"github.com/jaguago/jaguago/pkg/quadtree"
)

// DeregisterMode selects how Engine.Deregister removes a hazard.
type DeregisterMode int

const (
	// Immediate removes the hazard from the registry and rebuilds the
	// tree before the next query.
	Immediate DeregisterMode = iota
	// Lazy marks the hazard inactive without removing it; it stays out
	// of every query result but its Key remains valid until Flush.
	Lazy
)

// Config bounds tree construction.
type Config struct {
	MaxDepth int
}

// DefaultConfig returns the tree depth budget used when none is given.
func DefaultConfig() Config {
	return Config{MaxDepth: 6}
}

// Engine is the collision detection engine: a quadtree built over a fixed
// bounding box, kept in sync with a HazardMap of registered hazards.
type Engine struct {
	bbox   geo.Rect
	cfg    Config
	tree   *quadtree.Tree
	hazards *HazardMap
	dirty  bool
}

// NewEngine returns an Engine over bbox with no hazards registered.
func NewEngine(bbox geo.Rect, cfg Config) *Engine {
	if cfg.MaxDepth <= 0 {
		cfg = DefaultConfig()
	}
	e := &Engine{
		bbox:    bbox,
		cfg:     cfg,
		hazards: NewHazardMap(),
	}
	e.rebuild()
	return e
}

// Register adds haz to the engine under a freshly minted Key.
func (e *Engine) Register(haz hazard.Hazard) (hazard.Key, error) {
	if haz.Shape == nil {
		return 0, fmt.Errorf("cde: register %s: shape is nil", haz.Entity)
	}
	key := e.hazards.insert(haz)
	e.dirty = true
	return key, nil
}

// Deregister removes the hazard registered under key according to mode.
// It reports an error if key is not currently registered.
func (e *Engine) Deregister(key hazard.Key, mode DeregisterMode) error {
	if _, ok := e.hazards.get(key); !ok {
		return fmt.Errorf("cde: deregister: key %d not registered", key)
	}
	switch mode {
	case Immediate:
		e.hazards.delete(key)
	case Lazy:
		e.hazards.setActive(key, false)
	default:
		return fmt.Errorf("cde: deregister: unknown mode %d", mode)
	}
	e.dirty = true
	return nil
}

// Flush permanently removes every lazily-deregistered (inactive) hazard,
// returning the number removed.
func (e *Engine) Flush() int {
	n := e.hazards.flush()
	if n > 0 {
		e.dirty = true
	}
	return n
}

// Len returns the number of hazards currently registered and active.
func (e *Engine) Len() int {
	return len(e.hazards.active())
}

// BBox returns the engine's fixed bounding rectangle.
func (e *Engine) BBox() geo.Rect {
	return e.bbox
}

// QuadtreeRoot returns the root of the engine's current quadtree,
// rebuilding first if a mutation is pending. Exposed for the rendering
// collaborator only; no query in this package needs direct node access.
func (e *Engine) QuadtreeRoot() *quadtree.Node {
	e.ensureFresh()
	return e.tree.Root
}

// ensureFresh rebuilds the tree if any mutation has happened since the
// last build.
func (e *Engine) ensureFresh() {
	if e.dirty {
		e.rebuild()
	}
}

func (e *Engine) rebuild() {
	active := e.hazards.active()
	sources := make([]quadtree.HazardSource, len(active))
	for i, h := range active {
		sources[i] = quadtree.HazardSource{
			Key:    h.Key,
			Entity: h.Entity,
			Shape:  h.Shape,
			Side:   h.Side,
		}
	}
	e.tree = quadtree.Build(e.bbox, sources, e.cfg.MaxDepth)
	e.dirty = false
}
