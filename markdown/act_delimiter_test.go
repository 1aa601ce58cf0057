package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActDelimiter_SingleAsterisk_ReturnsItalic(t *testing.T) {
	tok, stride, ok := actDelimiter("*a", 0)

	require.True(t, ok)

	require.Equal(t, TypeItalic, tok.Type)
	require.Equal(t, 0, tok.Pos)
	require.Equal(t, 1, tok.Len)
	require.Equal(t, "*", tok.Val)

	require.Equal(t, 1, stride)
}

func TestActDelimiter_AsteriskAsLastByte_ReturnsItalic(t *testing.T) {
	input := "bold ends*"

	tok, stride, ok := actDelimiter(input, len(input)-1)

	require.True(t, ok)

	require.Equal(t, TypeItalic, tok.Type)
	require.Equal(t, len(input)-1, tok.Pos)
	require.Equal(t, 1, tok.Len)
	require.Equal(t, "*", tok.Val)

	require.Equal(t, 1, stride)
}

func TestActDelimiter_DoubleAsterisk_ReturnsBold(t *testing.T) {
	tok, stride, ok := actDelimiter("ab**cd", 2)

	require.True(t, ok)

	require.Equal(t, TypeBold, tok.Type)
	require.Equal(t, 2, tok.Pos)
	require.Equal(t, 2, tok.Len)
	require.Equal(t, "**", tok.Val)

	require.Equal(t, 2, stride)
}

func TestActDelimiter_DoubleUnderscore_ReturnsBold(t *testing.T) {
	tok, stride, ok := actDelimiter("__x__", 0)

	require.True(t, ok)

	require.Equal(t, TypeBold, tok.Type)
	require.Equal(t, "__", tok.Val)
	require.Equal(t, 2, stride)
}

func TestActDelimiter_SingleUnderscore_ReturnsItalic(t *testing.T) {
	tok, stride, ok := actDelimiter("_x_", 0)

	require.True(t, ok)

	require.Equal(t, TypeItalic, tok.Type)
	require.Equal(t, "_", tok.Val)
	require.Equal(t, 1, stride)
}

func TestActDelimiter_DoubleTilde_ReturnsStrikethrough(t *testing.T) {
	tok, stride, ok := actDelimiter("~~gone~~", 0)

	require.True(t, ok)

	require.Equal(t, TypeStrikethrough, tok.Type)
	require.Equal(t, "~~", tok.Val)
	require.Equal(t, 2, stride)
}

func TestActDelimiter_SingleTilde_FallsBackToItalic(t *testing.T) {
	tok, stride, ok := actDelimiter("~x", 0)

	require.True(t, ok)

	require.Equal(t, TypeItalic, tok.Type)
	require.Equal(t, "~", tok.Val)
	require.Equal(t, 1, stride)
}

func TestActDelimiter_MixedMarkers_NotDoubled(t *testing.T) {
	// '*' followed by '_' is two single markers, not a pair
	tok, stride, ok := actDelimiter("*_a", 0)

	require.True(t, ok)
	require.Equal(t, TypeItalic, tok.Type)
	require.Equal(t, "*", tok.Val)
	require.Equal(t, 1, stride)
}

func TestActDelimiter_PlainByte_NotOk(t *testing.T) {
	_, stride, ok := actDelimiter("abc", 0)

	require.False(t, ok)
	require.Zero(t, stride)
}
