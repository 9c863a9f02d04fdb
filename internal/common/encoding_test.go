package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTF8(t *testing.T) {
	// 0xEB is "ė" in ISO-8859-13
	assert.Equal(t, "Vardenė", ToUTF8([]byte{'V', 'a', 'r', 'd', 'e', 'n', 0xEB}))
	assert.Equal(t, "plain ascii\t1.00", ToUTF8([]byte("plain ascii\t1.00")))
	assert.Equal(t, "", ToUTF8(nil))
}

func TestToUTF8_RoundTrip(t *testing.T) {
	for _, text := range []string{
		"Vardenė1 Pavardenis1",
		"Vyturių g. XB, Raudondvaris, Kauno r.",
		"ąčęėįšųūž ĄČĘĖĮŠŲŪŽ",
	} {
		encoded, err := FromUTF8(text)
		require.NoError(t, err)
		assert.NotEqual(t, []byte(text), encoded, "baltic letters must be single bytes in ISO-8859-13")
		assert.Equal(t, text, ToUTF8(encoded))
	}
}

func TestFromUTF8_Unmappable(t *testing.T) {
	_, err := FromUTF8("日本")
	assert.Error(t, err)
}

func TestNormalizer(t *testing.T) {
	utf8Text := "Vardenė1 Pavardenis1"
	latin, err := FromUTF8(utf8Text)
	require.NoError(t, err)

	t.Run("decode always", func(t *testing.T) {
		n := Normalizer{}
		assert.Equal(t, utf8Text, n.Normalize(latin))
		assert.NotEqual(t, utf8Text, n.Normalize([]byte(utf8Text)), "utf-8 input is decoded again without passthrough")
	})

	t.Run("passthrough utf-8", func(t *testing.T) {
		n := Normalizer{PassthroughUTF8: true}
		assert.Equal(t, utf8Text, n.Normalize([]byte(utf8Text)))
		assert.Equal(t, utf8Text, n.Normalize(append([]byte("\xef\xbb\xbf"), utf8Text...)))
		assert.Equal(t, utf8Text, n.Normalize(latin), "invalid utf-8 is still decoded as ISO-8859-13")
		assert.Equal(t, "ascii only", n.Normalize([]byte("ascii only")))
	})
}

func TestTrimBOM(t *testing.T) {
	assert.Equal(t, []byte("a,b"), TrimBOM([]byte("\xef\xbb\xbfa,b")))
	assert.Equal(t, []byte("a,b"), TrimBOM([]byte("a,b")))
}
