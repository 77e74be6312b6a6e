package engine

import "testing"

// fillRow fills row y with locked cells, leaving the listed columns empty.
func fillRow(b *Board, y int, except ...int) {
	for x := 0; x < Cols; x++ {
		b.grid[y][x] = CellOf(KindJ)
	}
	for _, x := range except {
		b.grid[y][x] = CellEmpty
	}
}

// TestCollidesBounds verifies side and bottom bounds collide while the
// spawn buffer above the grid never does.
func TestCollidesBounds(t *testing.T) {
	var b Board
	cases := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"left wall", Piece{Kind: KindI, X: -1, Y: 5}, true},
		{"right wall", Piece{Kind: KindI, X: 7, Y: 5}, true},
		{"below floor", Piece{Kind: KindI, X: 3, Y: 21}, true},
		{"interior", Piece{Kind: KindI, X: 3, Y: 5}, false},
		{"above grid", Piece{Kind: KindI, X: 3, Y: -3}, false},
		{"above grid past wall", Piece{Kind: KindI, X: -1, Y: -3}, false},
	}
	for _, tc := range cases {
		if got := b.Collides(tc.piece); got != tc.want {
			t.Errorf("%s: Collides = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestCollidesOverlap verifies overlap with a locked cell collides.
func TestCollidesOverlap(t *testing.T) {
	var b Board
	b.grid[10][4] = CellOf(KindZ)

	p := Piece{Kind: KindT, X: 3, Y: 9} // occupies (4,9) (3,10) (4,10) (5,10)
	if !b.Collides(p) {
		t.Error("Collides = false over a locked cell, want true")
	}
	p.X = 5 // occupies (6,9) (5,10) (6,10) (7,10)
	if b.Collides(p) {
		t.Error("Collides = true beside a locked cell, want false")
	}
}

// TestLockDropsCellsAboveGrid verifies cells above row 0 are not written.
func TestLockDropsCellsAboveGrid(t *testing.T) {
	var b Board
	// Vertical I at Y=-2 occupies rows -2..1 in one column.
	b.Lock(Piece{Kind: KindI, Rot: 1, X: 3, Y: -2})

	locked := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.grid[y][x] != CellEmpty {
				locked++
			}
		}
	}
	if locked != 2 {
		t.Errorf("locked %d cells, want 2 (rows above the grid dropped)", locked)
	}
	if b.grid[0][5] == CellEmpty || b.grid[1][5] == CellEmpty {
		t.Error("expected locked cells at (5,0) and (5,1)")
	}
	if got := b.grid[0][5].Kind(); got != KindI {
		t.Errorf("locked cell kind = %v, want %v", got, KindI)
	}
}

// TestClearLinesSingle verifies one full row is removed, rows above shift
// down in order, and an empty row appears on top.
func TestClearLinesSingle(t *testing.T) {
	var b Board
	fillRow(&b, 21)
	b.grid[20][0] = CellOf(KindS)
	b.grid[19][9] = CellOf(KindL)

	n, rows := b.ClearLines()
	if n != 1 {
		t.Fatalf("cleared = %d, want 1", n)
	}
	if rows[0] != 21 {
		t.Errorf("cleared row index = %d, want 21", rows[0])
	}
	if got := b.grid[21][0]; got != CellOf(KindS) {
		t.Errorf("grid[21][0] = %v, want shifted-down %v", got, CellOf(KindS))
	}
	if got := b.grid[20][9]; got != CellOf(KindL) {
		t.Errorf("grid[20][9] = %v, want shifted-down %v", got, CellOf(KindL))
	}
	for x := 0; x < Cols; x++ {
		if b.grid[0][x] != CellEmpty {
			t.Fatalf("grid[0][%d] not empty after top fill", x)
		}
	}
}

// TestClearLinesNonAdjacent verifies two separated full rows clear in one
// call and report their original indices.
func TestClearLinesNonAdjacent(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	fillRow(&b, 21)
	b.grid[20][3] = CellOf(KindT) // survivor between the full rows

	n, rows := b.ClearLines()
	if n != 2 {
		t.Fatalf("cleared = %d, want 2", n)
	}
	if rows[0] != 19 || rows[1] != 21 {
		t.Errorf("cleared rows = %v, want [19 21 ...]", rows)
	}
	if got := b.grid[21][3]; got != CellOf(KindT) {
		t.Errorf("grid[21][3] = %v, want survivor %v", got, CellOf(KindT))
	}
}

// TestClearLinesNoneFull verifies a board with a gap clears nothing.
func TestClearLinesNoneFull(t *testing.T) {
	var b Board
	fillRow(&b, 21, 4)
	if n, _ := b.ClearLines(); n != 0 {
		t.Errorf("cleared = %d, want 0", n)
	}
	if b.grid[21][0] == CellEmpty {
		t.Error("partial row was disturbed")
	}
}

// TestToppedOut verifies only the hidden band triggers top-out.
func TestToppedOut(t *testing.T) {
	var b Board
	if b.ToppedOut() {
		t.Error("empty board reports topped out")
	}
	b.grid[HiddenRows][0] = CellOf(KindZ)
	if b.ToppedOut() {
		t.Error("visible-row cell reports topped out")
	}
	b.grid[HiddenRows-1][0] = CellOf(KindZ)
	if !b.ToppedOut() {
		t.Error("hidden-band cell not reported as topped out")
	}
}
