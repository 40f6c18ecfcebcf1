package client

const letterWidth = 3
const letterHeight = 5

// 3x5 點陣數字
var digitGlyphs = map[rune][letterHeight]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
}

// GetCellsFromChar returns the lit cells of a glyph as {col, row} offsets from
// its top-left corner. Unknown characters have no cells.
func GetCellsFromChar(char rune) [][2]int {
	glyph, ok := digitGlyphs[char]
	if !ok {
		return nil
	}
	var cells [][2]int
	for row, line := range glyph {
		for col, c := range line {
			if c == '#' {
				cells = append(cells, [2]int{col, row})
			}
		}
	}
	return cells
}

// wordWidth is the width in cells of word drawn with one blank column between letters.
func wordWidth(word string) int {
	n := len([]rune(word))
	if n == 0 {
		return 0
	}
	return n*letterWidth + (n - 1)
}
