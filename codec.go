package huffman

import (
	"fmt"
)

// Codec is one encoding session: the frequencies of an input, the tree built
// from them and the derived code table.  All three are fixed at creation.
type Codec struct {
	freqs FrequencyTable
	tree  *Tree
	enc   Encoder
	dec   Decoder
}

// NewCodec analyzes data and prepares a code for it.  It fails with
// EmptyInputError if data is empty.
func NewCodec(data []byte) (*Codec, error) {
	return NewCodecFromFrequencies(ComputeFrequencies(data))
}

// NewCodecFromFrequencies prepares a code for the given frequencies.
func NewCodecFromFrequencies(ft FrequencyTable) (*Codec, error) {
	tree, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}

	c := &Codec{freqs: ft, tree: tree}
	c.enc.Init(GenerateCodeTable(tree))
	if err := c.dec.Init(tree); err != nil {
		return nil, err
	}
	return c, nil
}

// Frequencies returns the frequency table the code was built from.
func (c *Codec) Frequencies() FrequencyTable {
	return c.freqs
}

// Tree returns the code tree.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// Table returns the code table.
func (c *Codec) Table() CodeTable {
	return c.enc.Table()
}

// Encode encodes data in '0'/'1' form.
func (c *Codec) Encode(data []byte) (BitSequence, error) {
	return c.enc.Encode(data)
}

// EncodePacked encodes data in packed form.
func (c *Codec) EncodePacked(data []byte) (PackedBits, error) {
	return c.enc.EncodePacked(data)
}

// Decode decodes a '0'/'1' stream.
func (c *Codec) Decode(bits BitSequence) ([]byte, error) {
	return c.dec.Decode(bits)
}

// DecodePacked decodes a packed stream.
func (c *Codec) DecodePacked(pb PackedBits) ([]byte, error) {
	return c.dec.DecodePacked(pb)
}

// String returns a short description of this Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec for %d bytes, %d symbols, with coded lengths of %d .. %d bits)",
		c.freqs.Total(), c.freqs.Len(), c.Table().MinSize(), c.Table().MaxSize())
}
