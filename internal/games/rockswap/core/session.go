package core

import "math/rand"

// State is the session phase.
type State uint8

const (
	StateIdle State = iota
	StateResolving
	StateGameOver
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// NoCell marks the absence of a preferred cell.
var NoCell = C(-1, -1)

// Rules holds the tunable parameters of a session.
type Rules struct {
	Width         int
	Height        int
	Colors        int
	PointsPerCell int
	PassCeiling   int // max resolve passes per move
}

// DefaultRules returns the standard 8x8 six-color rules.
func DefaultRules() Rules {
	return Rules{
		Width:         8,
		Height:        8,
		Colors:        6,
		PointsPerCell: 10,
		PassCeiling:   80,
	}
}

// pendingWipe is a wildcard activation queued by a swap, consumed by the
// first resolve pass.
type pendingWipe struct {
	cell       Coord
	color      Color
	wholeBoard bool
}

// PassResult describes one resolve pass.
type PassResult struct {
	Chain    int     // 1-based pass number within the move
	Matched  []Coord // cells of the pass's match mask
	Cleared  []Coord // cells actually emptied
	Points   int     // raw clear points before the chain multiplier
	Scored   int     // points added to the session score
	Created  *SpecialCreated
	Wipes    []ColorWipe
	Stable   bool // no further passes for this move
	LimitHit bool // the pass ceiling ended the move
	GameOver bool // no legal swap remains
}

// Session is one game in progress. It owns the board, the score and the
// move state machine; all randomness flows through the provided source.
type Session struct {
	rules     Rules
	board     *Board
	rng       *rand.Rand
	state     State
	score     int
	moves     int
	chain     int
	maxChain  int
	preferred Coord
	pending   *pendingWipe
	limitHits int
}

// NewSession creates a session with a fresh random board that contains no
// pre-existing run.
func NewSession(rules Rules, rng *rand.Rand) *Session {
	return NewSessionWithBoard(rules, NewRandomBoard(rules.Width, rules.Height, rng, rules.Colors), rng)
}

// NewSessionWithBoard creates a session over an existing board. The board is
// used as-is; rules.Width and rules.Height are taken from it.
func NewSessionWithBoard(rules Rules, b *Board, rng *rand.Rand) *Session {
	rules.Width = b.W
	rules.Height = b.H
	return &Session{
		rules:     rules,
		board:     b,
		rng:       rng,
		state:     StateIdle,
		preferred: NoCell,
	}
}

// Board returns the live board.
func (s *Session) Board() *Board { return s.board }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Moves returns the number of accepted swaps.
func (s *Session) Moves() int { return s.moves }

// Chain returns the current pass number, 0 while idle.
func (s *Session) Chain() int { return s.chain }

// MaxChain returns the longest chain reached so far.
func (s *Session) MaxChain() int { return s.maxChain }

// State returns the session phase.
func (s *Session) State() State { return s.state }

// Resolving reports whether a move is still being resolved.
func (s *Session) Resolving() bool { return s.state == StateResolving }

// GameOver reports whether no legal swap remains.
func (s *Session) GameOver() bool { return s.state == StateGameOver }

// LimitHits returns how many moves were cut short by the pass ceiling.
func (s *Session) LimitHits() int { return s.limitHits }

// Rules returns the session parameters.
func (s *Session) Rules() Rules { return s.rules }

// Swap attempts to swap two adjacent tiles and reports whether the move was
// accepted. Swaps are rejected while a move is resolving or the game is
// over; an illegal swap leaves the board, score and move count unchanged.
// An accepted swap moves the session to the resolving phase; a swap
// involving a wildcard queues its color wipe for the first pass.
func (s *Session) Swap(from, to Coord) bool {
	if s.state != StateIdle {
		return false
	}
	if !TrySwap(s.board, from, to) {
		return false
	}

	s.moves++
	s.chain = 0
	s.preferred = to
	s.state = StateResolving

	atFrom, atTo := s.board.At(from), s.board.At(to)
	switch {
	case atFrom.IsWildcard() && atTo.IsWildcard():
		s.pending = &pendingWipe{cell: to, wholeBoard: true}
	case atTo.IsWildcard():
		s.pending = &pendingWipe{cell: to, color: atFrom.Color}
	case atFrom.IsWildcard():
		s.pending = &pendingWipe{cell: from, color: atTo.Color}
	}
	return true
}

// ResolveStep runs one resolve pass: match (or consume a queued wildcard
// wipe), clear, collapse, refill. Scored points are the pass's raw points
// times the 1-based pass number. The move ends when a pass matches nothing
// or the pass ceiling is reached; the session then returns to idle, or to
// game over when no legal swap remains.
func (s *Session) ResolveStep() PassResult {
	if s.state != StateResolving {
		return PassResult{Stable: true, GameOver: s.state == StateGameOver}
	}

	if s.chain >= s.rules.PassCeiling {
		s.limitHits++
		res := PassResult{Chain: s.chain, Stable: true, LimitHit: true}
		s.finish(&res)
		return res
	}

	var mask *Mask
	var wipes []ColorWipe
	if p := s.pending; p != nil {
		s.pending = nil
		mask = s.wipeMask(p)
		w := ColorWipe{Cell: p.cell, WholeBoard: p.wholeBoard}
		if !p.wholeBoard {
			w.Colors = []Color{p.color}
		}
		wipes = append(wipes, w)
	} else {
		mask = Scan(s.board)
	}

	if !mask.Any() {
		res := PassResult{Stable: true}
		s.finish(&res)
		return res
	}

	s.chain++
	if s.chain > s.maxChain {
		s.maxChain = s.chain
	}

	preferred := NoCell
	if s.chain == 1 {
		preferred = s.preferred
	}

	matched := mask.Cells()
	cr := ClearAndScore(s.board, mask, preferred, s.rules.PointsPerCell)
	scored := cr.Points * s.chain
	s.score += scored

	Collapse(s.board)
	Refill(s.board, s.rng, s.rules.Colors)

	return PassResult{
		Chain:   s.chain,
		Matched: matched,
		Cleared: cr.Cleared,
		Points:  cr.Points,
		Scored:  scored,
		Created: cr.Created,
		Wipes:   append(wipes, cr.Wipes...),
	}
}

// Resolve runs resolve passes until the move is finished and returns them
// all, the terminal pass included.
func (s *Session) Resolve() []PassResult {
	var out []PassResult
	for s.state == StateResolving {
		out = append(out, s.ResolveStep())
	}
	return out
}

// finish ends the current move and checks for remaining legal swaps.
func (s *Session) finish(res *PassResult) {
	s.chain = 0
	s.preferred = NoCell
	s.pending = nil
	s.state = StateIdle
	if !HasLegalSwap(s.board) {
		s.state = StateGameOver
		res.GameOver = true
	}
}

// wipeMask builds the match mask for a queued wildcard activation: the
// trigger cell plus every cell of the target color, or every occupied cell
// for a whole-board wipe.
func (s *Session) wipeMask(p *pendingWipe) *Mask {
	m := NewMask(s.board.W, s.board.H)
	for y := 0; y < s.board.H; y++ {
		for x := 0; x < s.board.W; x++ {
			c := C(x, y)
			t := s.board.At(c)
			if t.IsEmpty() {
				continue
			}
			if p.wholeBoard || (t.HasMatchColor() && t.Color == p.color) {
				m.Mark(c)
			}
		}
	}
	m.Mark(p.cell)
	return m
}
