// Package snake implements the snake game engine: the body, heading rules,
// movement and collision, food placement and the frame compositor.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/term-snake/internal/core"
)

// FoodPolicy selects how a new food cell is drawn.
type FoodPolicy string

const (
	// FoodFree draws uniformly over interior cells the snake does not occupy.
	FoodFree FoodPolicy = "free"
	// FoodAnywhere draws uniformly over the whole interior, snake included.
	FoodAnywhere FoodPolicy = "anywhere"
)

// Valid reports whether p names a known policy.
func (p FoodPolicy) Valid() bool {
	return p == FoodFree || p == FoodAnywhere
}

// MinGridSize is the smallest width or height that leaves an interior.
const MinGridSize = 3

// Options configures a new game.
type Options struct {
	Width  int
	Height int
	Seed   int64
	Food   FoodPolicy

	// TailChase lets the head enter the cell the tail is leaving this tick.
	TailChase bool
}

// DefaultOptions returns the classic 30x20 setup.
func DefaultOptions() Options {
	return Options{
		Width:  30,
		Height: 20,
		Food:   FoodFree,
	}
}

// Validate checks the options for a playable game.
func (o Options) Validate() error {
	if o.Width < MinGridSize || o.Height < MinGridSize {
		return fmt.Errorf("snake: grid %dx%d is too small, need at least %dx%d",
			o.Width, o.Height, MinGridSize, MinGridSize)
	}
	if !o.Food.Valid() {
		return fmt.Errorf("snake: unknown food policy %q", o.Food)
	}
	return nil
}

// Game holds the complete state of one snake game.
type Game struct {
	grid      core.Grid
	rng       *rand.Rand
	food      core.Point
	body      *Body
	direction Direction
	policy    FoodPolicy
	tailChase bool
	tick      uint64
	score     int
	gameOver  bool
}

// New creates a game with a one-cell snake in the center heading right and
// one food cell placed.
func New(opts Options) (*Game, error) {
	if opts.Food == "" {
		opts.Food = FoodFree
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grid := core.NewGrid(opts.Width, opts.Height)
	g := &Game{
		grid:      grid,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		body:      NewBody(grid.Center()),
		direction: DirRight,
		policy:    opts.Food,
		tailChase: opts.TailChase,
	}
	g.food = grid.RandomInterior(g.rng)
	if g.policy == FoodFree && g.body.Contains(g.food) {
		g.spawnFood()
	}
	return g, nil
}

// Step advances the game by one tick using the input collected for it.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionQuit) {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	if d, ok := DirectionFor(input.Turn()); ok {
		g.Turn(d)
	}
	g.Advance()

	return core.StepResult{State: g.State()}
}

// Turn requests a new heading. Reversal is rejected.
func (g *Game) Turn(d Direction) {
	if g.gameOver {
		return
	}
	g.direction = g.direction.Turn(d)
}

// Advance moves the snake one cell. Collisions are checked against the body
// as it was before the move; on collision the game ends and nothing moves.
func (g *Game) Advance() {
	if g.gameOver {
		return
	}

	newHead := g.body.Head().Add(g.direction.Delta())
	eating := newHead == g.food

	if !g.grid.InInterior(newHead) || g.hitsBody(newHead, eating) {
		g.gameOver = true
		return
	}

	g.body.PushHead(newHead)

	if eating {
		g.score++
		g.spawnFood()
		return
	}
	g.body.PopTail()
}

// hitsBody checks self collision. The tail only counts as free when tail
// chasing is enabled and the snake is not about to grow.
func (g *Game) hitsBody(p core.Point, growing bool) bool {
	if g.tailChase && !growing {
		return g.body.ContainsExceptTail(p)
	}
	return g.body.Contains(p)
}

// spawnFood places food according to the game's policy.
func (g *Game) spawnFood() {
	if g.policy == FoodAnywhere {
		g.food = g.grid.RandomInterior(g.rng)
		return
	}

	in := g.grid.Interior()
	free := make([]core.Point, 0, in.Area())
	for y := in.Y; y < in.Bottom(); y++ {
		for x := in.X; x < in.Right(); x++ {
			p := core.Pt(x, y)
			if !g.body.Contains(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		// Snake fills the interior; leave food where it is.
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// SetFood moves the food to p. Positions outside the interior are ignored.
func (g *Game) SetFood(p core.Point) {
	if g.grid.InInterior(p) {
		g.food = p
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Grid returns the playfield.
func (g *Game) Grid() core.Grid { return g.grid }

// Body returns the snake's cells, head first.
func (g *Game) Body() []core.Point { return g.body.Cells() }

// Head returns the snake's head.
func (g *Game) Head() core.Point { return g.body.Head() }

// Len returns the snake's length.
func (g *Game) Len() int { return g.body.Len() }

// Food returns the food cell.
func (g *Game) Food() core.Point { return g.food }

// Heading returns the current direction.
func (g *Game) Heading() Direction { return g.direction }

// Score returns the number of food cells eaten.
func (g *Game) Score() int { return g.score }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.gameOver }

// Tick returns the number of steps taken.
func (g *Game) Tick() uint64 { return g.tick }

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d\n", g.tick, g.score)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", g.body.Len(), g.direction)
	head := g.body.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, g.food.X, g.food.Y)
	fmt.Fprintf(&b, "GameOver: %v\n", g.gameOver)
	return b.String()
}
