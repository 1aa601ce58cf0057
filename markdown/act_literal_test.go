package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActLiteral_StopsAtDelimiter(t *testing.T) {
	tok, stride := actLiteral("plain *bold*", 0)

	require.Equal(t, TypeLiteral, tok.Type)
	require.Equal(t, 0, tok.Pos)
	require.Equal(t, "plain ", tok.Val)
	require.Equal(t, 6, tok.Len)
	require.Equal(t, 6, stride)
}

func TestActLiteral_RunsToEndOfLine(t *testing.T) {
	tok, stride := actLiteral("no markers here", 0)

	require.Equal(t, "no markers here", tok.Val)
	require.Equal(t, 15, stride)
}

func TestActLiteral_StartsMidLine(t *testing.T) {
	line := "**Hello World**"

	tok, stride := actLiteral(line, 2)

	require.Equal(t, "Hello World", tok.Val)
	require.Equal(t, 2, tok.Pos)
	require.Equal(t, 11, stride)
}

func TestActLiteral_HashAndBackticksArePlainText(t *testing.T) {
	tok, stride := actLiteral("### not `special` here", 0)

	require.Equal(t, "### not `special` here", tok.Val)
	require.Equal(t, 22, stride)
}

func TestActLiteral_MultiByteRunes(t *testing.T) {
	line := "привет*мир"

	tok, stride := actLiteral(line, 0)

	require.Equal(t, "привет", tok.Val)
	require.Equal(t, len("привет"), stride)

	tok2, _ := actLiteral(line, stride+1)
	require.Equal(t, "мир", tok2.Val)
}
