package model

// BookID identifies the vocabulary book a puzzle or score belongs to
type BookID string

// Difficulty controls grid size and vocabulary selection
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GridSizes maps each difficulty to its grid dimension
var GridSizes = map[Difficulty]int{
	DifficultyEasy:   8,
	DifficultyMedium: 12,
	DifficultyHard:   15,
}

// IsValid returns true if the difficulty is one of the known tiers
func (d Difficulty) IsValid() bool {
	_, ok := GridSizes[d]
	return ok
}

// GridSize returns the grid dimension for this difficulty
func (d Difficulty) GridSize() int {
	return GridSizes[d]
}

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Direction is a unit step vector for laying a word along a line
type Direction struct {
	DRow int
	DCol int
}

// The four placement directions. Reverse directions are never attempted.
var Directions = [4]Direction{
	{DRow: 0, DCol: 1},  // right
	{DRow: 1, DCol: 0},  // down
	{DRow: 1, DCol: 1},  // diagonal down-right
	{DRow: -1, DCol: 1}, // diagonal up-right
}

// Grid is a square letter matrix
type Grid struct {
	Size  int
	Cells [][]rune // Row-major: Cells[row][col], 0 means empty
}

// NewGrid creates an empty grid of the given size
func NewGrid(size int) *Grid {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Grid{
		Size:  size,
		Cells: cells,
	}
}

// Get returns the letter at the given position, or 0 if empty
func (g *Grid) Get(pos Position) rune {
	if !g.InBounds(pos) {
		return 0
	}
	return g.Cells[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (g *Grid) Set(pos Position, letter rune) {
	if g.InBounds(pos) {
		g.Cells[pos.Row][pos.Col] = letter
	}
}

// IsEmpty returns true if the cell at the given position holds no letter
func (g *Grid) IsEmpty(pos Position) bool {
	return g.Get(pos) == 0
}

// InBounds returns true if the position is within the grid
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Size && pos.Col >= 0 && pos.Col < g.Size
}

// EmptyCount returns the number of empty cells
func (g *Grid) EmptyCount() int {
	count := 0
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col] == 0 {
				count++
			}
		}
	}
	return count
}

// Placement records where a word was laid on the grid
type Placement struct {
	Word      string
	Start     Position
	Direction Direction
}

// Puzzle is the artifact returned by a generation call.
// It is never mutated after assembly.
type Puzzle struct {
	Grid       *Grid
	Words      []string // Ordered subset of the candidates actually placed
	Placements []Placement
	Difficulty Difficulty
	Size       int
	BookID     BookID
}
