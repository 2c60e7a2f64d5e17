package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/piece"
)

// RotateDirection selects a quarter turn
type RotateDirection uint8

const (
	RotateCW RotateDirection = iota
	RotateCCW
)

// Config configures a new Controller. Zero values fall back to the
// standard board, a seeded seven-bag, silent audio, and the system
// clock.
type Config struct {
	BoardWidth  int
	BoardHeight int
	StartLevel  int
	Randomizer  piece.Randomizer
	Sound       SoundPlayer
	Time        TimeProvider
}

// Controller owns the game state and sequences the spawn, fall, lock
// and clear cycle. It consumes one input Frame per render frame and
// advances all timing off the pausable game clock, so pausing freezes
// gravity, auto-repeat and lock delay for free.
type Controller struct {
	State *GameState
	Clock *PausableClock

	rng   piece.Randomizer
	sound SoundPlayer

	lastStep      time.Time
	fallAcc       time.Duration // game time accumulated toward the next gravity step
	lockRemaining time.Duration // lock-delay countdown while grounded

	dasLeft  autoRepeat
	dasRight autoRepeat
	softDrop autoRepeat
}

// NewController creates a controller with a freshly spawned piece
func NewController(cfg Config) *Controller {
	if cfg.BoardWidth <= 0 {
		cfg.BoardWidth = constants.BoardWidth
	}
	if cfg.BoardHeight <= 0 {
		cfg.BoardHeight = constants.BoardHeight
	}
	if cfg.Time == nil {
		cfg.Time = NewMonotonicTimeProvider()
	}
	if cfg.Randomizer == nil {
		cfg.Randomizer = piece.NewBag(cfg.Time.Now().UnixNano())
	}
	if cfg.Sound == nil {
		cfg.Sound = NopSoundPlayer{}
	}

	c := &Controller{
		State:    NewGameState(cfg.BoardWidth, cfg.BoardHeight, cfg.StartLevel),
		Clock:    NewPausableClock(cfg.Time),
		rng:      cfg.Randomizer,
		sound:    cfg.Sound,
		dasLeft:  newAutoRepeat(constants.AutoRepeatDelay, constants.AutoRepeatInterval),
		dasRight: newAutoRepeat(constants.AutoRepeatDelay, constants.AutoRepeatInterval),
		softDrop: newAutoRepeat(0, constants.SoftDropInterval),
	}
	c.State.Next = c.rng.Next()
	c.spawn()
	c.lastStep = c.Clock.Now()
	return c
}

// Step advances the game by one frame using the given input snapshot.
// Returns false when the player quit.
func (c *Controller) Step(frame input.Frame) bool {
	now := c.Clock.Now()
	dt := now.Sub(c.lastStep)
	if dt < 0 {
		dt = 0
	}
	c.lastStep = now

	// Session controls stay live in every status
	if frame.Pressed(input.ActionQuit) {
		return false
	}
	if frame.Pressed(input.ActionRestart) {
		c.Restart()
		return true
	}
	if frame.Pressed(input.ActionPause) {
		c.togglePause()
	}

	if c.State.Status != StatusRunning {
		return true
	}

	// Discrete piece actions
	if frame.Pressed(input.ActionRotateCW) {
		c.TryRotate(RotateCW)
	}
	if frame.Pressed(input.ActionRotateCCW) {
		c.TryRotate(RotateCCW)
	}
	if frame.Pressed(input.ActionHold) {
		c.holdPiece()
	}
	if frame.Pressed(input.ActionHardDrop) {
		c.HardDrop()
		// The piece locked and the next one spawned; gravity and lock
		// delay start fresh next frame
		return true
	}

	// Held directions with auto-repeat
	c.stepDirection(&c.dasLeft, frame, input.ActionMoveLeft, -1, dt)
	c.stepDirection(&c.dasRight, frame, input.ActionMoveRight, 1, dt)
	c.stepSoftDrop(frame, dt)

	// Gravity, gated by the level interval. Variable frame deltas
	// accumulate; a long frame may yield several steps.
	if c.State.Phase == PhaseFalling {
		c.fallAcc += dt
		interval := constants.FallInterval(c.State.Level)
		for c.fallAcc >= interval && c.State.Status == StatusRunning && c.State.Phase == PhaseFalling {
			c.fallAcc -= interval
			if !c.TryMove(1, 0) {
				c.ground()
			}
		}
	}

	// Lock delay
	if c.State.Status == StatusRunning && c.State.Phase == PhaseGrounded {
		c.lockRemaining -= dt
		if c.lockRemaining <= 0 {
			c.lockPiece()
		}
	}

	return true
}

// TryMove shifts the active piece by the given delta if the target
// cells are free. Rejected moves leave all state untouched.
func (c *Controller) TryMove(dRow, dCol int) bool {
	st := c.State
	if st.Status != StatusRunning {
		return false
	}
	cur := &st.Current
	if st.Board.Collides(cur.CellsAt(cur.Row+dRow, cur.Col+dCol, cur.Rotation)) {
		return false
	}
	cur.Row += dRow
	cur.Col += dCol
	c.afterMutation()
	return true
}

// TryRotate turns the active piece one state in the given direction,
// trying the unadjusted placement first and then each wall-kick offset
// in table order. Returns false with state untouched if every
// candidate collides.
func (c *Controller) TryRotate(dir RotateDirection) bool {
	st := c.State
	if st.Status != StatusRunning {
		return false
	}
	cur := &st.Current
	n := piece.RotationCount(cur.Kind)
	if n == 1 {
		// Single visual state: rotation trivially succeeds, cells unchanged
		return true
	}

	from := cur.Rotation
	to := (from + 1) % n
	if dir == RotateCCW {
		to = (from - 1 + n) % n
	}

	if !st.Board.Collides(cur.CellsAt(cur.Row, cur.Col, to)) {
		cur.Rotation = to
		c.afterMutation()
		return true
	}
	for _, k := range piece.Kicks(cur.Kind, from, to) {
		if !st.Board.Collides(cur.CellsAt(cur.Row+k.Row, cur.Col+k.Col, to)) {
			cur.Row += k.Row
			cur.Col += k.Col
			cur.Rotation = to
			c.afterMutation()
			return true
		}
	}
	return false
}

// HardDrop drops the piece to its resting position and locks it
// immediately. Returns the number of rows dropped.
func (c *Controller) HardDrop() int {
	st := c.State
	if st.Status != StatusRunning {
		return 0
	}
	rows := 0
	for c.TryMove(1, 0) {
		rows++
	}
	st.Score += rows * constants.HardDropPointsPerCell
	c.lockPiece()
	return rows
}

// GhostCells returns the cells the active piece would occupy after a
// hard drop, without mutating anything. Rendering draws these as the
// ghost piece.
func (c *Controller) GhostCells() []piece.Offset {
	st := c.State
	cur := st.Current
	row := cur.Row
	for !st.Board.Collides(cur.CellsAt(row+1, cur.Col, cur.Rotation)) {
		row++
	}
	return cur.CellsAt(row, cur.Col, cur.Rotation)
}

// Restart reinitializes the session: fresh board, zero counters, new
// piece. The session high score survives.
func (c *Controller) Restart() {
	st := c.State
	st.Board.Reset()
	st.Score = 0
	st.Lines = 0
	st.Combo = 0
	st.Level = st.StartLevel
	st.HasHold = false
	st.Status = StatusRunning
	st.Phase = PhaseFalling

	c.Clock.Resume()
	c.dasLeft.release()
	c.dasRight.release()
	c.softDrop.release()

	st.Next = c.rng.Next()
	c.spawn()
	c.lastStep = c.Clock.Now()
	log.Printf("restart: level=%d", st.Level)
}

func (c *Controller) togglePause() {
	switch c.State.Status {
	case StatusRunning:
		c.State.Status = StatusPaused
		c.Clock.Pause()
	case StatusPaused:
		c.State.Status = StatusRunning
		c.Clock.Resume()
		c.lastStep = c.Clock.Now()
	}
}

// stepDirection handles one horizontal direction: press fires a move
// immediately and arms auto-repeat, holding repeats after the delay.
func (c *Controller) stepDirection(ar *autoRepeat, frame input.Frame, action input.Action, dCol int, dt time.Duration) {
	if frame.Pressed(action) {
		ar.press()
		c.TryMove(0, dCol)
		return
	}
	if !frame.Held(action) {
		ar.release()
		return
	}
	if !ar.active {
		// The input layer emits quiet frames between the press edge and
		// its hold confirmation; a held flag on an idle repeater means
		// the same key is still down. Rearm without an extra move.
		ar.press()
		return
	}
	fired := ar.advance(dt)
	for i := 0; i < fired; i++ {
		if !c.TryMove(0, dCol) {
			break
		}
	}
}

func (c *Controller) stepSoftDrop(frame input.Frame, dt time.Duration) {
	if frame.Pressed(input.ActionSoftDrop) {
		c.softDrop.press()
		c.softDropStep()
		return
	}
	if !frame.Held(input.ActionSoftDrop) {
		c.softDrop.release()
		return
	}
	if !c.softDrop.active {
		c.softDrop.press()
		return
	}
	fired := c.softDrop.advance(dt)
	for i := 0; i < fired && c.State.Status == StatusRunning; i++ {
		c.softDropStep()
	}
}

func (c *Controller) softDropStep() {
	if c.TryMove(1, 0) {
		c.State.Score += constants.SoftDropPointsPerCell
		c.bumpHighScore()
	} else {
		c.ground()
	}
}

// grounded reports whether the active piece has support directly below
func (c *Controller) grounded() bool {
	st := c.State
	cur := st.Current
	return st.Board.Collides(cur.CellsAt(cur.Row+1, cur.Col, cur.Rotation))
}

// ground moves the piece into the grounded phase with a full lock delay
func (c *Controller) ground() {
	if c.State.Phase != PhaseGrounded {
		c.State.Phase = PhaseGrounded
		c.lockRemaining = constants.LockDelay
		c.fallAcc = 0
	}
}

// afterMutation reconciles the phase with the new piece position.
// Successful moves while grounded extend the lock delay, with each
// extension capped at the full base delay; sliding off a ledge
// resumes falling.
func (c *Controller) afterMutation() {
	grounded := c.grounded()
	switch {
	case grounded && c.State.Phase == PhaseGrounded:
		c.lockRemaining = min(c.lockRemaining+constants.LockDelayExtension, constants.LockDelay)
	case grounded:
		c.State.Phase = PhaseGrounded
		c.lockRemaining = constants.LockDelay
		c.fallAcc = 0
	case c.State.Phase == PhaseGrounded:
		c.State.Phase = PhaseFalling
		c.fallAcc = 0
	}
}

// lockPiece commits the active piece to the board, scores the
// placement and any cleared rows, and spawns the next piece.
func (c *Controller) lockPiece() {
	st := c.State
	st.Phase = PhaseLocking

	st.Board.Lock(st.Current.Cells(), st.Current.Color())
	st.Score += constants.LockBonus

	cleared := st.Board.ClearLines()
	if cleared > 0 {
		st.Lines += cleared
		st.Combo++
		award := constants.LineClearPoints(cleared) * (st.Level + 1)
		if st.Combo > 1 {
			award += constants.ComboPointsPerStep * st.Combo * (st.Level + 1)
		}
		st.Score += award

		prevLevel := st.Level
		st.RecalcLevel()
		if st.Level > prevLevel {
			c.sound.PlayLevelUp()
		} else {
			c.sound.PlayClear(cleared)
		}
		log.Printf("clear: lines=%d award=%d combo=%d level=%d", cleared, award, st.Combo, st.Level)
	} else {
		st.Combo = 0
		c.sound.PlayLock()
	}
	c.bumpHighScore()

	c.spawn()
}

// spawn brings the next piece in at the top-center origin and draws a
// new preview. A spawn that already collides ends the session.
func (c *Controller) spawn() {
	st := c.State
	row, col := st.SpawnOrigin()
	st.Current = ActivePiece{Kind: st.Next, Row: row, Col: col}
	st.Next = c.rng.Next()
	st.CanHold = true
	st.Phase = PhaseFalling
	c.fallAcc = 0
	c.lockRemaining = 0

	if st.Board.IsGameOver(st.Current.Cells()) {
		st.Status = StatusGameOver
		c.sound.PlayGameOver()
		log.Printf("game over: score=%d lines=%d level=%d", st.Score, st.Lines, st.Level)
		return
	}
	// A spawn directly onto the stack starts its lock delay at once
	c.afterMutation()
}

// holdPiece swaps the active piece with the hold slot, once per spawn
func (c *Controller) holdPiece() {
	st := c.State
	if !st.CanHold {
		return
	}
	row, col := st.SpawnOrigin()
	kind := st.Current.Kind
	if st.HasHold {
		st.Current = ActivePiece{Kind: st.Hold, Row: row, Col: col}
	} else {
		st.Current = ActivePiece{Kind: st.Next, Row: row, Col: col}
		st.Next = c.rng.Next()
		st.HasHold = true
	}
	st.Hold = kind
	st.CanHold = false
	st.Phase = PhaseFalling
	c.fallAcc = 0
	c.lockRemaining = 0

	if st.Board.IsGameOver(st.Current.Cells()) {
		st.Status = StatusGameOver
		c.sound.PlayGameOver()
		return
	}
	c.afterMutation()
}

func (c *Controller) bumpHighScore() {
	if c.State.Score > c.State.HighScore {
		c.State.HighScore = c.State.Score
	}
}
