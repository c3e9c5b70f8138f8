// Package debugui draws Dear ImGui debug windows from inside the ECS frame.
// Windows are entities carrying an ImguiItem; ImguiSystem defers their
// render functions to the end of the frame, after every other system ran.
package debugui

import (
	"github.com/plus3/termtris/ecs"
)

// ImguiItem is a component holding a render function called once per frame
// between the backend's BeginFrame and EndFrame.
type ImguiItem struct {
	Render func()
}

// Panel is a debug window.
type Panel interface {
	Render()
}

// ImguiSystem queues the render function of every ImguiItem.
type ImguiSystem struct {
	Items ecs.Query[struct{ *ImguiItem }]
}

// Execute queues every item's Render to run after the frame's other
// systems.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range i.Items.Values() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// RegisterComponents registers ImguiItem with registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// Install spawns one ImguiItem per panel and registers an ImguiSystem. Call
// it after the game systems so the windows see the finished frame.
func Install(storage *ecs.Storage, scheduler *ecs.Scheduler, panels ...Panel) {
	for _, p := range panels {
		storage.Spawn(ImguiItem{Render: p.Render})
	}
	scheduler.Register(&ImguiSystem{})
}
