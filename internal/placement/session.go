package placement

import (
	"fmt"

	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// State is the session's position in the placement loop.
type State int

const (
	Idle State = iota
	Aiming
	Previewing
	Committing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Aiming:
		return "aiming"
	case Previewing:
		return "previewing"
	case Committing:
		return "committing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// TickInput is what the host collected since the last tick.
type TickInput struct {
	Ray     rl.Ray
	Confirm bool
	Edits   []EditCommand
}

// PreviewState describes the ghost for rendering.
type PreviewState struct {
	Object    *engine.GameObject
	Transform engine.Transform
	Bounds    rl.Vector3
	Parked    bool
	Verdict   Verdict
}

// TickResult is the observable outcome of one tick.
type TickResult struct {
	State     State
	Preview   *PreviewState // nil when no preview exists
	Committed *engine.GameObject
	CommitErr error
}

// Option configures a Session.
type Option func(*Session)

func WithCatalogSource(src CatalogSource) Option {
	return func(s *Session) { s.source = src }
}

func WithUndo(u UndoRegistrar) Option {
	return func(s *Session) { s.committer.Undo = u }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMaxDistance(d float32) Option {
	return func(s *Session) { s.raycaster.MaxDistance = d }
}

// Session is the per-tick placement state machine. It owns at most one
// preview and is not safe for concurrent use; drive it from the host's frame
// loop.
type Session struct {
	OnStateChanged engine.EventWithArg[State]
	OnCommitted    engine.EventWithArg[*engine.GameObject]

	world     World
	rules     Rules
	source    CatalogSource
	log       *zap.Logger
	raycaster Raycaster
	validator FootprintValidator
	committer Committer

	active   bool
	state    State
	category Category
	catalog  []Entry
	selected int
	anchors  map[Category]engine.GameObjectRef
	preview  *Preview

	// previews counts live ghosts; it never exceeds one.
	previews int
}

// NewSession builds a session over w using rules. The session starts
// inactive on the Ground category with an empty catalog.
func NewSession(w World, rules Rules, opts ...Option) (*Session, error) {
	if w == nil {
		return nil, fmt.Errorf("placement: nil world")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		world:   w,
		rules:   rules,
		log:     zap.NewNop(),
		anchors: make(map[Category]engine.GameObjectRef),
	}
	s.raycaster = Raycaster{World: w, Rules: rules}
	s.validator = FootprintValidator{World: w}
	s.committer = Committer{World: w}
	for _, opt := range opts {
		opt(s)
	}
	s.committer.Logger = s.log
	return s, nil
}

func (s *Session) State() State { return s.state }

func (s *Session) Active() bool { return s.active }

func (s *Session) Category() Category { return s.category }

func (s *Session) Selection() int { return s.selected }

func (s *Session) Catalog() []Entry { return s.catalog }

func (s *Session) Rules() Rules { return s.rules }

// Preview returns the live ghost, or nil.
func (s *Session) Preview() *Preview { return s.preview }

// SetActive toggles the session. Activating with a non-empty catalog moves
// Idle to Aiming with the preview parked; deactivating destroys the preview at
// once and drops the state to Idle.
func (s *Session) SetActive(active bool) {
	if s.active == active {
		return
	}
	s.active = active
	s.log.Debug("session active changed", zap.Bool("active", active))
	if !active {
		s.destroyPreview()
		s.setState(Idle)
		return
	}
	s.refreshPreview()
}

// SetCategory switches the active category, reloads its catalog from the
// configured source and resets the selection. An active session gets a fresh
// preview of the first entry right away.
func (s *Session) SetCategory(c Category) error {
	if _, err := s.rules.Lookup(c); err != nil {
		return err
	}
	s.category = c
	s.selected = 0
	s.destroyPreview()

	if s.source == nil {
		s.refreshPreview()
		return nil
	}
	entries, err := s.source.Load(c.String())
	if err != nil {
		s.log.Warn("catalog load failed", zap.Stringer("category", c), zap.Error(err))
		s.catalog = nil
		s.refreshPreview()
		return fmt.Errorf("load %v catalog: %w", c, err)
	}
	s.catalog = entries
	s.log.Debug("catalog loaded", zap.Stringer("category", c), zap.Int("entries", len(entries)))
	s.refreshPreview()
	return nil
}

// SetCatalog replaces the catalog for the active category. The selection is
// kept as is; an index past the end stays stale until SetSelection fixes it.
func (s *Session) SetCatalog(entries []Entry) {
	s.catalog = entries
	s.destroyPreview()
	s.refreshPreview()
}

// SetSelection previews a different catalog entry. Edits made to the old
// preview are discarded.
func (s *Session) SetSelection(index int) {
	if index == s.selected {
		return
	}
	s.selected = index
	s.destroyPreview()
	s.refreshPreview()
}

// SetAnchor sets the parent that committed objects of category c go under.
func (s *Session) SetAnchor(c Category, anchor *engine.GameObject) {
	s.anchors[c] = engine.RefTo(anchor)
}

// AnchorFor resolves the anchor for c through the world; nil when unset or
// no longer in the scene.
func (s *Session) AnchorFor(c Category) *engine.GameObject {
	ref := s.anchors[c]
	if !ref.IsValid() {
		return nil
	}
	return s.world.FindByUID(ref.UID)
}

func (s *Session) selectionValid() bool {
	return s.selected >= 0 && s.selected < len(s.catalog) && s.catalog[s.selected].Template != nil
}

// Tick advances the state machine one step: edits, raycast, snap, preview
// reposition, footprint check and, on confirm, commit.
func (s *Session) Tick(in TickInput) TickResult {
	if !s.active {
		s.destroyPreview()
		s.setState(Idle)
		return TickResult{State: Idle}
	}
	if len(s.catalog) == 0 {
		s.destroyPreview()
		s.setState(Idle)
		return TickResult{State: Idle}
	}

	cfg := s.rules[s.category]

	if s.selectionValid() {
		s.ensurePreview()
	} else {
		s.destroyPreview()
	}

	if s.preview != nil {
		for _, e := range in.Edits {
			s.preview.ApplyEdit(e, cfg)
		}
	}

	point, hit := s.raycaster.Cast(in.Ray, s.category)
	if !hit {
		if s.preview != nil {
			s.preview.Park()
		}
		s.setState(Aiming)
		res := TickResult{State: Aiming, Preview: s.previewState(Verdict{})}
		if in.Confirm {
			res.CommitErr = ErrNotPreviewing
		}
		return res
	}

	var verdict Verdict
	if s.preview != nil {
		s.preview.Reposition(point)
		verdict = s.validator.Validate(s.preview.Entry.Bounds, s.preview.Transform(), point, cfg)
	}
	s.setState(Previewing)

	res := TickResult{State: Previewing, Preview: s.previewState(verdict)}
	if !in.Confirm {
		return res
	}

	if s.preview == nil || !s.selectionValid() {
		res.CommitErr = ErrStaleSelection
		return res
	}
	if !verdict.Allowed {
		s.log.Debug("confirm ignored, footprint blocked",
			zap.Stringer("category", s.category),
			zap.Int("blockers", len(verdict.Blockers)))
		res.CommitErr = ErrBlocked
		return res
	}

	obj, err := s.committer.Commit(s.category, cfg, s.catalog[s.selected], s.AnchorFor(s.category), point, s.preview.Transform())
	if err != nil {
		res.CommitErr = err
		return res
	}

	s.setState(Committing)
	res.State = Committing
	res.Committed = obj
	s.OnCommitted.Invoke(obj)
	return res
}

// refreshPreview recreates the preview right after an activation, category,
// catalog or selection change. The next Tick positions it.
func (s *Session) refreshPreview() {
	if !s.active {
		return
	}
	if len(s.catalog) == 0 {
		s.destroyPreview()
		s.setState(Idle)
		return
	}
	s.ensurePreview()
	if s.state == Idle && s.preview != nil {
		s.preview.Park()
		s.setState(Aiming)
	}
}

func (s *Session) ensurePreview() {
	if !s.selectionValid() {
		return
	}
	if s.preview != nil && s.preview.Index == s.selected && s.preview.Category == s.category {
		return
	}
	s.destroyPreview()
	s.preview = NewPreview(s.catalog[s.selected], s.selected, s.category)
	s.previews++
	s.log.Debug("preview created",
		zap.Stringer("category", s.category),
		zap.String("template", s.preview.Entry.Name))
}

func (s *Session) destroyPreview() {
	if s.preview == nil {
		return
	}
	s.preview.Destroy()
	s.preview = nil
	s.previews--
}

func (s *Session) previewState(v Verdict) *PreviewState {
	if s.preview == nil {
		return nil
	}
	return &PreviewState{
		Object:    s.preview.Object,
		Transform: s.preview.Transform(),
		Bounds:    s.preview.Entry.Bounds,
		Parked:    s.preview.Parked,
		Verdict:   v,
	}
}

func (s *Session) setState(st State) {
	if s.state == st {
		return
	}
	prev := s.state
	s.state = st
	s.log.Debug("session state changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", st))
	s.OnStateChanged.Invoke(st)
}
