package ecs

import (
	"log/slog"

	"github.com/phanxgames/glint"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TransitionData is the component value holding an entity's player.
type TransitionData struct {
	Player *glint.Player
}

// Transition is the Donburi component type for TransitionData.
var Transition = donburi.NewComponentType[TransitionData]()

// CompletedEvent reports that a transition started through Play finished
// normally.
type CompletedEvent struct {
	Entity  donburi.Entity
	Setting *glint.Setting
}

// CompletedEventType is the Donburi event type for CompletedEvent.
var CompletedEventType = events.NewEventType[CompletedEvent]()

var transitionQuery = donburi.NewQuery(filter.Contains(Transition))

// Attach gives entity a Transition component driven by player, replacing any
// player it already had.
func Attach(w donburi.World, entity donburi.Entity, player *glint.Player) {
	entry := w.Entry(entity)
	if !entry.HasComponent(Transition) {
		entry.AddComponent(Transition)
	}
	Transition.SetValue(entry, TransitionData{Player: player})
}

// PlayerOf returns the player attached to entity, or nil.
func PlayerOf(w donburi.World, entity donburi.Entity) *glint.Player {
	if !w.Valid(entity) {
		return nil
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(Transition) {
		return nil
	}
	return Transition.Get(entry).Player
}

// Play starts s on entity's player and publishes a CompletedEvent when it
// finishes. It reports false if the entity has no player.
func Play(w donburi.World, entity donburi.Entity, s *glint.Setting) bool {
	p := PlayerOf(w, entity)
	if p == nil {
		return false
	}
	p.Play(s, func() {
		glint.Logger().Debug("ecs: transition completed", slog.Any("entity", entity), slog.String("setting", s.Name))
		CompletedEventType.Publish(w, CompletedEvent{Entity: entity, Setting: s})
	})
	return true
}

// Update ticks every player in the world, then applies every player's
// samples. All players advance before any material is written.
func Update(w donburi.World, dt float64) {
	transitionQuery.Each(w, func(entry *donburi.Entry) {
		if p := Transition.Get(entry).Player; p != nil {
			p.Tick(dt)
		}
	})
	transitionQuery.Each(w, func(entry *donburi.Entry) {
		if p := Transition.Get(entry).Player; p != nil {
			p.Apply()
		}
	})
}

// Reset restores every player's renderers and releases their instances.
// Use it when tearing a world down.
func Reset(w donburi.World) {
	transitionQuery.Each(w, func(entry *donburi.Entry) {
		if p := Transition.Get(entry).Player; p != nil {
			p.ResetPlay()
			p.ResetToOrigin()
			p.Destroy()
		}
	})
}
