package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func allBytes() []byte {
	out := make([]byte, NumSymbols)
	for index := range out {
		out[index] = byte(index)
	}
	return out
}

func TestCodec_RoundTrip(t *testing.T) {
	test := func(t *testing.T, input string) {
		c, err := NewCodec([]byte(input))
		require.NoError(t, err)

		bits, err := c.Encode([]byte(input))
		require.NoError(t, err)
		out, err := c.Decode(bits)
		require.NoError(t, err)
		require.Equal(t, input, string(out))

		pb, err := c.EncodePacked([]byte(input))
		require.NoError(t, err)
		require.Equal(t, bits.Len(), pb.Len)
		out, err = c.DecodePacked(pb)
		require.NoError(t, err)
		require.Equal(t, input, string(out))

		size, err := c.Table().EncodedSize(c.Frequencies())
		require.NoError(t, err)
		require.Equal(t, uint64(bits.Len()), size)
	}

	t.Run("example", func(t *testing.T) {
		test(t, "aabbbcc")
	})

	t.Run("single symbol", func(t *testing.T) {
		test(t, "aaaa")
	})

	t.Run("single byte", func(t *testing.T) {
		test(t, "\x00")
	})

	t.Run("two symbols", func(t *testing.T) {
		test(t, "ab")
	})

	t.Run("long string", func(t *testing.T) {
		test(t, strings.Repeat("abcdef", 100))
	})

	t.Run("every byte", func(t *testing.T) {
		test(t, string(allBytes()))
	})

	t.Run("random skewed", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			test(t, uniuri.NewLenChars(1+i*37, []byte("eeeeeeeettttaaoinshrdlu")))
		}
	})

	t.Run("random binary", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			test(t, uniuri.NewLenChars(1000, allBytes()))
		}
	})
}

func TestCodec_Example(t *testing.T) {
	c, err := NewCodec([]byte("aabbbcc"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}

	bits, err := c.Encode([]byte("aabbbcc"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if actual := bits.String(); actual != "10100001111" {
		t.Errorf("expected \"10100001111\", got %q", actual)
	}

	pb, err := c.EncodePacked([]byte("aabbbcc"))
	if err != nil {
		t.Fatalf("EncodePacked failed: %v", err)
	}
	expectData := []byte{0xa1, 0xe0}
	if pb.Len != 11 || !bytes.Equal(expectData, pb.Data) {
		t.Errorf("wrong packed bits:\n\texpect: %#v (11 bits)\n\tactual: %#v (%d bits)", expectData, pb.Data, pb.Len)
	}

	actualSizes := c.Table().SizeBySymbol()['a' : 'c'+1]
	expectSizes := []byte{2, 1, 2}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}

	expectString := "(Huffman codec for 7 bytes, 3 symbols, with coded lengths of 1 .. 2 bits)"
	actualString := c.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestCodec_Empty(t *testing.T) {
	c, err := NewCodec(nil)
	if c != nil {
		t.Errorf("expected nil codec, got %v", c)
	}
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCodec_PrefixFree(t *testing.T) {
	for i := 0; i < 20; i++ {
		input := uniuri.NewLenChars(500, []byte("aaaaaaaabbbbccdefghijklmnop\x00\xff"))
		c, err := NewCodec([]byte(input))
		require.NoError(t, err)

		table := c.Table()
		symbols := table.Symbols()
		for _, x := range symbols {
			for _, y := range symbols {
				if x == y {
					continue
				}
				cx, _ := table.Lookup(x)
				cy, _ := table.Lookup(y)
				require.False(t, cx.HasPrefix(cy), "code %s for %v has prefix %s for %v", cx, x, cy, y)
			}
		}
	}
}

func TestCodec_LengthMonotonic(t *testing.T) {
	for i := 0; i < 20; i++ {
		input := uniuri.NewLenChars(2000, []byte("eeeeeeeeeeeettttttttaaaaaaoooonnisrhdlcumwfgypbvkjxqz"))
		c, err := NewCodec([]byte(input))
		require.NoError(t, err)

		ft := c.Frequencies()
		table := c.Table()
		for _, x := range ft.Entries() {
			for _, y := range ft.Entries() {
				if x.Count <= y.Count {
					continue
				}
				cx, _ := table.Lookup(x.Symbol)
				cy, _ := table.Lookup(y.Symbol)
				require.LessOrEqual(t, cx.Size, cy.Size,
					"%v (count %d) has a longer code than %v (count %d)", x.Symbol, x.Count, y.Symbol, y.Count)
			}
		}
	}
}

func TestCodec_IndependentSessions(t *testing.T) {
	a, err := NewCodec([]byte("aaab"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	b, err := NewCodec([]byte("xyz"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}

	if _, err := a.Encode([]byte("x")); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}

	bits, err := b.Encode([]byte("zyx"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out, err := b.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if actual := string(out); actual != "zyx" {
		t.Errorf("expected \"zyx\", got %q", actual)
	}
}
