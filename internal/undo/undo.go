package undo

import (
	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// DefaultMaxDepth caps the stack; the oldest entry is dropped first.
const DefaultMaxDepth = 50

// ActionType is the kind of change an Action reverts.
type ActionType int

const (
	ActionCreated ActionType = iota
	ActionTransform
)

// Action captures enough state to revert one change.
type Action struct {
	Type     ActionType
	Label    string
	Object   *engine.GameObject
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// Target is the world an undo is applied to.
type Target interface {
	Destroy(g *engine.GameObject)
	Refresh(g *engine.GameObject)
}

// Stack is a capped undo history.
type Stack struct {
	target   Target
	maxDepth int
	actions  []Action
	log      *zap.Logger
}

func NewStack(target Target, maxDepth int, log *zap.Logger) *Stack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Stack{target: target, maxDepth: maxDepth, log: log}
}

// RegisterCreated records a newly created object; undoing it destroys it.
func (s *Stack) RegisterCreated(g *engine.GameObject, label string) {
	if g == nil {
		return
	}
	s.push(Action{Type: ActionCreated, Label: label, Object: g})
}

// RecordTransform saves g's current local transform before an edit.
func (s *Stack) RecordTransform(g *engine.GameObject, label string) {
	if g == nil {
		return
	}
	s.push(Action{
		Type:     ActionTransform,
		Label:    label,
		Object:   g,
		Position: g.Transform.Position,
		Rotation: g.Transform.Rotation,
		Scale:    g.Transform.Scale,
	})
}

func (s *Stack) push(a Action) {
	if len(s.actions) >= s.maxDepth {
		s.actions = s.actions[1:]
	}
	s.actions = append(s.actions, a)
}

// Undo reverts the most recent action and returns it.
func (s *Stack) Undo() (Action, bool) {
	if len(s.actions) == 0 {
		return Action{}, false
	}
	a := s.actions[len(s.actions)-1]
	s.actions = s.actions[:len(s.actions)-1]

	switch a.Type {
	case ActionCreated:
		s.target.Destroy(a.Object)
	case ActionTransform:
		a.Object.Transform.Position = a.Position
		a.Object.Transform.Rotation = a.Rotation
		a.Object.Transform.Scale = a.Scale
		s.target.Refresh(a.Object)
	}
	s.log.Info("undo", zap.String("action", a.Label), zap.Uint64("uid", a.Object.UID))
	return a, true
}

// Peek returns the most recent action without reverting it.
func (s *Stack) Peek() (Action, bool) {
	if len(s.actions) == 0 {
		return Action{}, false
	}
	return s.actions[len(s.actions)-1], true
}

func (s *Stack) Len() int {
	return len(s.actions)
}

func (s *Stack) Clear() {
	s.actions = nil
}
