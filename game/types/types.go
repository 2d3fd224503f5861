package types

// Board geometry, pacing and palette
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	GridSize     = 20 // Pixel size of one cell
	GridWidth    = ScreenWidth / GridSize
	GridHeight   = ScreenHeight / GridSize
	TickRate     = 20 // Ticks per second
)

var (
	BoardBackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor          = Color{R: 93, G: 216, B: 228}
	AppleColor           = Color{R: 255, G: 0, B: 0}
	SnakeColor           = Color{R: 0, G: 255, B: 0}
)

// Point is a cell on the board in pixel coordinates, aligned to GridSize.
type Point struct {
	X, Y int
}

// Add returns p shifted by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Wrap folds p back onto the board, modulo the screen size on each axis.
func (p Point) Wrap() Point {
	return Point{X: mod(p.X, ScreenWidth), Y: mod(p.Y, ScreenHeight)}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// Center is the cell the snake spawns on.
func Center() Point {
	return Point{X: ScreenWidth / 2, Y: ScreenHeight / 2}
}

// Grid represents the game grid dimensions in cells
type Grid struct {
	Width  int
	Height int
}

// Board is the fixed grid every game is played on.
var Board = Grid{Width: GridWidth, Height: GridHeight}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

type Color struct {
	R, G, B uint8
}
