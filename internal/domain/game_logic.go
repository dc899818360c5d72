package domain

import (
	"errors"
	"math/rand/v2"
	"sync"
)

// ErrBoardFull is raised when there is no empty cell left to spawn into.
var ErrBoardFull = errors.New("no empty cell left on the board")

// Logic owns the board, the snake and the food. All methods are safe for
// concurrent use: the tick loop and the input handler share the snake's
// direction through the same mutex.
type Logic struct {
	board *Board
	snake *Snake
	food  Position
	rng   *rand.Rand

	mu sync.Mutex
}

func NewLogic(width, height uint32, rng *rand.Rand) (*Logic, error) {
	if uint64(width)*uint64(height) < 2 {
		return nil, ErrBoardFull
	}

	l := &Logic{
		board: NewBoard(width, height),
		rng:   rng,
	}
	l.food = l.spawn(CellFood)
	l.snake = NewSnake(l.spawn(CellSnake))
	return l, nil
}

func (l *Logic) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.board.Reset()
	l.snake.Reset()
	l.snake.SetHead(l.spawn(CellSnake))
	l.food = l.spawn(CellFood)
}

// spawn marks a uniformly chosen empty cell and returns its position.
// It panics with ErrBoardFull when the board has no empty cell.
func (l *Logic) spawn(cell Cell) Position {
	empty := l.board.EmptyIndexes()
	if len(empty) == 0 {
		panic(ErrBoardFull)
	}
	index := empty[l.rng.IntN(len(empty))]
	l.board.Set(index, cell)
	return l.board.ToPosition(index)
}

func (l *Logic) Step() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.step()
}

func (l *Logic) step() bool {
	position, ok := l.snake.Step()
	if !ok {
		return false
	}

	if !l.proceed(position) && !l.snake.Current(position) {
		return false
	}

	index := l.board.ToIndex(position)
	cell, ok := l.board.Get(index)
	if !ok {
		return false
	}

	if cell == CellFood {
		l.snake.Grow(position)
		l.food = l.spawn(CellFood)
	} else {
		l.snake.Move(position)
	}

	l.board.Set(index, CellSnake)
	return true
}

func (l *Logic) proceed(p Position) bool {
	if !l.board.Contains(p) {
		return false
	}
	cell, ok := l.board.Get(l.board.ToIndex(p))
	if !ok {
		return false
	}
	return cell != CellSnake
}

// Passed frees the cell about to leave the rendered body and returns it so
// the renderer can erase it. It must run before Step on every tick.
func (l *Logic) Passed() (Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.passed()
}

func (l *Logic) passed() (Position, bool) {
	if l.snake.Direction() == DirectionNone {
		return Position{}, false
	}

	position, ok := l.snake.Last()
	if !ok {
		position = l.snake.Head()
	}

	if index := l.board.ToIndex(position); index < l.board.Len() {
		l.board.Set(index, CellEmpty)
	}
	return position, true
}

// Advance runs one tick: Passed, then Step, then a snapshot for the renderer.
func (l *Logic) Advance() Frame {
	l.mu.Lock()
	defer l.mu.Unlock()

	frame := Frame{}
	if position, ok := l.passed(); ok {
		frame.Passed = &position
	}
	frame.Alive = l.step()
	frame.Snake = l.snake.Body()
	frame.Food = l.food
	frame.Score = l.score()
	return frame
}

func (l *Logic) Snake() []Position {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snake.Body()
}

func (l *Logic) Food() Position {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.food
}

// Score is the body length minus the initial tail and the head, floored at zero.
func (l *Logic) Score() uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.score()
}

func (l *Logic) score() uint {
	length := len(l.snake.Tail()) + 1
	if length <= InitialTailLen+1 {
		return 0
	}
	return uint(length - InitialTailLen - 1)
}

func (l *Logic) SetDirection(dir Direction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snake.SetDirection(dir)
}

func (l *Logic) Direction() Direction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snake.Direction()
}

func (l *Logic) Width() uint32 {
	return l.board.Width()
}

func (l *Logic) Height() uint32 {
	return l.board.Height()
}
