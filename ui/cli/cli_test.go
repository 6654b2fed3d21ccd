package cli

import (
	"bytes"
	"clickchess/src/chesslib"
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/interact"
	"clickchess/src/logx"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, gb *chesslib.GameBuilder, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	c := NewCLI(gb, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	require.NoError(t, c.Run())
	return out.String()
}

func TestCLIPlaysMove(t *testing.T) {
	gb := chesslib.NewBuilderBoard(logx.NewNop())
	out := run(t, gb, "e2", "e4", "quit")

	assert.Contains(t, out, "Played e2e4")
	assert.Contains(t, out, "Turn: black")
	assert.Contains(t, out, "Quitting")
	assert.Equal(t, base.Black, gb.Turn())
	assert.Equal(t, interact.PhaseIdle, gb.Phase())
}

func TestCLIPromotion(t *testing.T) {
	gb := chesslib.NewBuilderBoard(logx.NewNop())
	require.NoError(t, gb.CreateFromFEN("7k/4P3/8/8/8/8/8/4K3 w - - 0 1"))

	out := run(t, gb, "e7", "e8", "n")
	assert.Contains(t, out, "Promote to q, r, b or n")
	assert.Contains(t, out, "promote> ")
	assert.Contains(t, out, "Played e7e8n")
	assert.Equal(t, base.WKnight, gb.CurrentBoard().At(base.NewSquare(4, 7)))
}

func TestCLICancelPromotion(t *testing.T) {
	gb := chesslib.NewBuilderBoard(logx.NewNop())
	require.NoError(t, gb.CreateFromFEN("7k/4P3/8/8/8/8/8/4K3 w - - 0 1"))

	out := run(t, gb, "q", "e7", "e8", "x")
	assert.Contains(t, out, "No promotion pending")
	assert.Contains(t, out, "Promotion cancelled")
	assert.Equal(t, "7k/4P3/8/8/8/8/8/4K3 w - - 0 1", gb.FEN())
}

func TestCLICommands(t *testing.T) {
	gb := chesslib.NewBuilderBoard(logx.NewNop())
	out := run(t, gb,
		"help",
		"fen 8/8/8",
		"fen 4k3/8/8/8/8/8/8/4K3 b - - 0 1",
		"fen",
		"zz9",
		"new",
	)

	assert.Contains(t, out, "toggle a mark")
	assert.Contains(t, out, "Error: error parse FEN")
	assert.Contains(t, out, "FEN: 4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	assert.Contains(t, out, `Unknown command "zz9"`)
	assert.Equal(t, base.FEN_START_GAME, gb.FEN())
}

func TestCLIMarks(t *testing.T) {
	gb := chesslib.NewBuilderBoard(logx.NewNop())
	run(t, gb, "!d4")
	assert.Equal(t, interact.MarkStyle, gb.View().SquareStyles[base.NewSquare(3, 3)])
}

func TestCLISaveSVG(t *testing.T) {
	gb := chesslib.NewBuilderBoard(logx.NewNop())
	name := filepath.Join(t.TempDir(), "board.svg")

	out := run(t, gb, "e2", "svg "+name, "svg")
	assert.Contains(t, out, "Saved "+name)
	assert.Contains(t, out, "Usage: svg FILE")

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "<circle", "move dots of the selected pawn")
}

func TestDrawPlain(t *testing.T) {
	gb := chesslib.NewBuilderBoard(logx.NewNop())
	gb.CreateClassic()
	gb.Click(base.NewSquare(6, 0)) // g1

	var buf bytes.Buffer
	DrawPlain(&buf, gb.CurrentBoard(), gb.View(), false)
	lines := strings.Split(buf.String(), "\n")
	require.Greater(t, len(lines), 10)

	assert.Equal(t, "   a  b  c  d  e  f  g  h ", lines[1])
	assert.Equal(t, "8  r  n  b  q  k  b  n  r  8", lines[2])
	assert.Equal(t, "3  .  .  .  .  . *.* . *.* 3", lines[7])
	assert.Equal(t, "1  R  N  B  Q  K  B (N) R  1", lines[9])

	buf.Reset()
	DrawPlain(&buf, gb.CurrentBoard(), interact.View{}, true)
	lines = strings.Split(buf.String(), "\n")
	assert.Equal(t, "   h  g  f  e  d  c  b  a ", lines[1])
	assert.Equal(t, "1  R  N  B  K  Q  B  N  R  1", lines[2])
}
