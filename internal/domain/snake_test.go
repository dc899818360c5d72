package domain

import "testing"

func TestSnakeReset(t *testing.T) {
	snake := NewSnake(NewPosition(0, 0))
	snake.Grow(NewPosition(1, 0))
	snake.SetDirection(DirectionRight)
	snake.Reset()

	if len(snake.Tail()) != 0 {
		t.Fatalf("expected empty tail, got %v", snake.Tail())
	}
	if snake.Head() != NewPosition(1, 0) {
		t.Errorf("reset must not move the head, got %+v", snake.Head())
	}
	if snake.Direction() != DirectionRight {
		t.Errorf("reset must not touch the direction, got %v", snake.Direction())
	}
}

func TestSnakeCurrent(t *testing.T) {
	snake := NewSnake(NewPosition(1, 1))
	if !snake.Current(NewPosition(1, 1)) {
		t.Fatal("expected head to be current")
	}
	if snake.Current(NewPosition(1, 0)) {
		t.Fatal("expected (1,0) not to be current")
	}
}

func TestSnakeGrowIsUncapped(t *testing.T) {
	snake := NewSnake(NewPosition(0, 0))
	for i := uint32(1); i <= 6; i++ {
		snake.Grow(NewPosition(i, 0))
	}
	if got := len(snake.Tail()); got != 6 {
		t.Fatalf("expected tail length 6, got %d", got)
	}
	if snake.Tail()[0] != NewPosition(5, 0) {
		t.Errorf("expected most recent segment first, got %+v", snake.Tail()[0])
	}
}

func TestSnakeMoveCapsTail(t *testing.T) {
	snake := NewSnake(NewPosition(0, 0))
	for i := uint32(1); i <= 6; i++ {
		snake.Move(NewPosition(0, i))
	}
	if got := len(snake.Tail()); got != InitialTailLen {
		t.Fatalf("expected tail length %d, got %d", InitialTailLen, got)
	}

	want := []Position{{0, 5}, {0, 4}, {0, 3}}
	for i, p := range want {
		if snake.Tail()[i] != p {
			t.Errorf("tail[%d]: expected %+v, got %+v", i, p, snake.Tail()[i])
		}
	}
}

func TestSnakeMoveKeepsGrowth(t *testing.T) {
	snake := NewSnake(NewPosition(0, 0))
	snake.Move(NewPosition(0, 1))
	snake.Move(NewPosition(0, 2))
	snake.Move(NewPosition(0, 3))
	snake.Grow(NewPosition(0, 4))
	snake.Move(NewPosition(0, 5))
	snake.Move(NewPosition(0, 6))

	if got := len(snake.Tail()); got != InitialTailLen+1 {
		t.Fatalf("expected tail length %d, got %d", InitialTailLen+1, got)
	}
	if snake.Head() != NewPosition(0, 6) {
		t.Errorf("expected head (0,6), got %+v", snake.Head())
	}
}

func TestSnakeMoveThenGrow(t *testing.T) {
	snake := NewSnake(NewPosition(0, 0))
	snake.Grow(NewPosition(1, 0))
	snake.Move(NewPosition(1, 1))
	snake.Move(NewPosition(2, 1))
	snake.Grow(NewPosition(2, 2))

	if snake.Head() != NewPosition(2, 2) {
		t.Fatalf("expected head (2,2), got %+v", snake.Head())
	}
}

func TestSnakeSetDirection(t *testing.T) {
	tests := []struct {
		name    string
		current Direction
		next    Direction
		want    Direction
	}{
		{"reverse down to up", DirectionDown, DirectionUp, DirectionDown},
		{"reverse up to down", DirectionUp, DirectionDown, DirectionUp},
		{"reverse left to right", DirectionLeft, DirectionRight, DirectionLeft},
		{"reverse right to left", DirectionRight, DirectionLeft, DirectionRight},
		{"turn down to left", DirectionDown, DirectionLeft, DirectionLeft},
		{"turn left to up", DirectionLeft, DirectionUp, DirectionUp},
		{"same direction", DirectionRight, DirectionRight, DirectionRight},
		{"from none up", DirectionNone, DirectionUp, DirectionUp},
		{"from none down", DirectionNone, DirectionDown, DirectionDown},
		{"from none left", DirectionNone, DirectionLeft, DirectionLeft},
		{"from none right", DirectionNone, DirectionRight, DirectionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snake := NewSnake(NewPosition(0, 0))
			snake.SetDirection(tt.current)
			snake.SetDirection(tt.next)
			if snake.Direction() != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, snake.Direction())
			}
		})
	}
}

func TestSnakeStep(t *testing.T) {
	tests := []struct {
		name string
		head Position
		dir  Direction
		want Position
		ok   bool
	}{
		{"up", NewPosition(1, 1), DirectionUp, NewPosition(1, 0), true},
		{"down", NewPosition(1, 1), DirectionDown, NewPosition(1, 2), true},
		{"left", NewPosition(1, 1), DirectionLeft, NewPosition(0, 1), true},
		{"right", NewPosition(1, 1), DirectionRight, NewPosition(2, 1), true},
		{"none stays", NewPosition(1, 1), DirectionNone, NewPosition(1, 1), true},
		{"up off the top", NewPosition(3, 0), DirectionUp, Position{}, false},
		{"left off the side", NewPosition(0, 3), DirectionLeft, Position{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snake := NewSnake(tt.head)
			snake.SetDirection(tt.dir)
			got, ok := snake.Step()
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestSnakeLast(t *testing.T) {
	snake := NewSnake(NewPosition(0, 0))
	if _, ok := snake.Last(); ok {
		t.Fatal("expected no last segment on an empty tail")
	}

	snake.Grow(NewPosition(0, 1))
	snake.Grow(NewPosition(0, 2))
	last, ok := snake.Last()
	if !ok || last != NewPosition(0, 0) {
		t.Fatalf("expected last (0,0), got %+v ok=%v", last, ok)
	}
}

func TestSnakeBody(t *testing.T) {
	snake := NewSnake(NewPosition(0, 0))
	snake.Move(NewPosition(0, 1))
	snake.Move(NewPosition(0, 2))

	body := snake.Body()
	want := []Position{{0, 2}, {0, 1}, {0, 0}}
	if len(body) != len(want) {
		t.Fatalf("expected %v, got %v", want, body)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, body)
		}
	}
}
