package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/engine"
)

// RenderPriority orders renderer execution; lower priorities draw
// first and higher ones draw over them.
type RenderPriority int

const (
	PriorityWell    RenderPriority = 100
	PriorityEntity  RenderPriority = 200
	PriorityUI      RenderPriority = 400
	PriorityOverlay RenderPriority = 500
)

// SystemRenderer draws one concern of the frame from the shared context
type SystemRenderer interface {
	Render(ctx *Context)
}

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
}

// Orchestrator owns the renderer list and runs a full frame: clear,
// render in priority order, show.
type Orchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
}

// NewOrchestrator creates an orchestrator for the given screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{screen: screen}
}

// Register adds a renderer at the given priority, keeping the list sorted
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.renderers = append(o.renderers, rendererEntry{renderer: r, priority: priority})
	sort.SliceStable(o.renderers, func(i, j int) bool {
		return o.renderers[i].priority < o.renderers[j].priority
	})
}

// RenderFrame draws one complete frame from the snapshot
func (o *Orchestrator) RenderFrame(snap engine.Snapshot) {
	o.screen.Clear()
	ctx := NewContext(o.screen, snap)
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx)
	}
	o.screen.Show()
}
