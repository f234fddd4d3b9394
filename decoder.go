package huffman

import (
	"fmt"
)

// Decoder recovers bytes from an encoded stream by walking a Tree.
//
// By default a stream that ends in the middle of a code is rejected with
// TruncatedStreamError.  SetDropPartial(true) discards such a trailing
// partial code instead.
type Decoder struct {
	tree        *Tree
	dropPartial bool
}

// Init initializes this Decoder.  It fails with NullTreeError if the tree is
// nil or has no nodes.
func (d *Decoder) Init(tree *Tree) error {
	if tree.isEmpty() {
		*d = Decoder{}
		return NullTreeError{}
	}
	*d = Decoder{tree: tree}
	return nil
}

// SetDropPartial controls whether an incomplete trailing code is silently
// dropped (true) or reported as TruncatedStreamError (false, the default).
func (d *Decoder) SetDropPartial(drop bool) {
	d.dropPartial = drop
}

// Tree returns the tree this Decoder walks.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode decodes a stream in '0'/'1' form.  Any other byte in the stream
// fails with InvalidBitError.
func (d Decoder) Decode(bits BitSequence) ([]byte, error) {
	return d.run(len(bits), func(i int) (byte, byte, bool) {
		raw := bits[i]
		switch raw {
		case '0':
			return 0, raw, true
		case '1':
			return 1, raw, true
		}
		return 0, raw, false
	})
}

// DecodePacked decodes a packed stream.
func (d Decoder) DecodePacked(pb PackedBits) ([]byte, error) {
	if pb.Len < 0 || pb.Len > 8*len(pb.Data) {
		return nil, fmt.Errorf("huffman: %d bits do not fit in %d bytes", pb.Len, len(pb.Data))
	}
	return d.run(pb.Len, func(i int) (byte, byte, bool) {
		bit := pb.Bit(i)
		return bit, bit, true
	})
}

// String returns a short description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder over %v)", d.tree)
}

// run drives the tree cursor over numBits bits.  bitAt returns the bit value,
// the raw stream element for error reporting, and whether the element was a
// valid bit at all.
func (d Decoder) run(numBits int, bitAt func(i int) (bit byte, raw byte, ok bool)) ([]byte, error) {
	t := d.tree
	if t.isEmpty() {
		return nil, NullTreeError{}
	}

	root := t.node(t.root)

	// A lone leaf is coded as "0"; see GenerateCodeTable.
	if root.isLeaf() {
		out := make([]byte, 0, numBits)
		for i := 0; i < numBits; i++ {
			bit, raw, ok := bitAt(i)
			if !ok || bit != 0 {
				return nil, InvalidBitError{Offset: i, Value: raw}
			}
			out = append(out, byte(root.symbol))
		}
		return out, nil
	}

	var out []byte
	cursor := t.root
	start := 0
	for i := 0; i < numBits; i++ {
		bit, raw, ok := bitAt(i)
		if !ok {
			return nil, InvalidBitError{Offset: i, Value: raw}
		}
		if cursor == t.root {
			start = i
		}

		n := t.node(cursor)
		if bit == 0 {
			cursor = n.left
		} else {
			cursor = n.right
		}

		if next := t.node(cursor); next.isLeaf() {
			out = append(out, byte(next.symbol))
			cursor = t.root
		}
	}

	if cursor != t.root && !d.dropPartial {
		return nil, TruncatedStreamError{Offset: start, Pending: numBits - start}
	}
	return out, nil
}

// Decode decodes bits by walking tree.
func Decode(bits BitSequence, tree *Tree) ([]byte, error) {
	var d Decoder
	if err := d.Init(tree); err != nil {
		return nil, err
	}
	return d.Decode(bits)
}

// DecodePacked decodes packed bits by walking tree.
func DecodePacked(pb PackedBits, tree *Tree) ([]byte, error) {
	var d Decoder
	if err := d.Init(tree); err != nil {
		return nil, err
	}
	return d.DecodePacked(pb)
}

var _ fmt.Stringer = Decoder{}
