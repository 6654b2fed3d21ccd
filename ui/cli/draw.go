package cli

import (
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/interact"
	"fmt"
	"io"
)

// DrawFunc prints one frame of the board.
type DrawFunc func(w io.Writer, mb base.Mailbox, v interact.View, flipped bool)

const files = "abcdefgh"

// squares in print order: rank 8 first unless flipped
func printOrder(flipped bool) (ranks, fileIdx [8]int) {
	for i := 0; i < 8; i++ {
		if flipped {
			ranks[i], fileIdx[i] = i, 7-i
		} else {
			ranks[i], fileIdx[i] = 7-i, i
		}
	}
	return
}

func fileHeader(w io.Writer, fileIdx [8]int) {
	fmt.Fprint(w, "  ")
	for _, f := range fileIdx {
		fmt.Fprintf(w, " %c ", files[f])
	}
	fmt.Fprintln(w)
}

// DrawPlain uses ASCII only: (X) selected, * destination, ! mark.
func DrawPlain(w io.Writer, mb base.Mailbox, v interact.View, flipped bool) {
	ranks, fileIdx := printOrder(flipped)

	fmt.Fprintln(w)
	fileHeader(w, fileIdx)
	for _, rank := range ranks {
		fmt.Fprintf(w, "%d ", rank+1)
		for _, file := range fileIdx {
			sq := base.NewSquare(file, rank)
			g := string(base.ConvertRuneFromPiece(mb[sq]))
			left, right := " ", " "
			if st, ok := v.SquareStyles[sq]; ok {
				switch st.Kind {
				case interact.StyleSelected:
					left, right = "(", ")"
				case interact.StyleQuiet, interact.StyleCapture:
					left, right = "*", "*"
				case interact.StyleMark:
					left, right = "!", "!"
				}
			}
			fmt.Fprint(w, left+g+right)
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fileHeader(w, fileIdx)
	fmt.Fprintln(w)
}

// DrawANSI paints squares with background colours and unicode glyphs.
func DrawANSI(w io.Writer, mb base.Mailbox, v interact.View, flipped bool) {
	// ANSI-code
	const (
		reset     = "\033[0m"
		lightBg   = "\033[47m"
		darkBg    = "\033[100m"
		selectBg  = "\033[43m"
		captureBg = "\033[41m"
		markBg    = "\033[44m"
		whiteF    = "\033[97m"
		blackF    = "\033[30m"
		dimF      = "\033[90m"
	)

	ranks, fileIdx := printOrder(flipped)

	fmt.Fprintln(w)
	fileHeader(w, fileIdx)
	for _, rank := range ranks {
		fmt.Fprintf(w, "%d ", rank+1)
		for _, file := range fileIdx {
			sq := base.NewSquare(file, rank)
			p := mb[sq]
			g := base.ConvertGlyphFromPiece(p)

			bg := darkBg
			if (rank+file)%2 == 1 {
				bg = lightBg
			}
			fg := dimF
			switch p.Color() {
			case base.White:
				fg = whiteF
				if bg == lightBg {
					fg = blackF
				}
			case base.Black:
				fg = blackF
			}

			if st, ok := v.SquareStyles[sq]; ok {
				switch st.Kind {
				case interact.StyleSelected:
					bg = selectBg
				case interact.StyleQuiet:
					g = "•"
				case interact.StyleCapture:
					bg = captureBg
				case interact.StyleMark:
					bg = markBg
				}
			}

			fmt.Fprintf(w, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fileHeader(w, fileIdx)
	fmt.Fprintln(w)
}
