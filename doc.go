// Package huffman builds classic (tree-based) Huffman codes for byte
// alphabets and uses them to encode and decode byte strings.
//
// The pipeline is:
//
//	freqs := ComputeFrequencies(data)
//	tree, err := BuildTree(freqs)
//	table := GenerateCodeTable(tree)
//	bits, err := Encode(data, table)
//	out, err := Decode(bits, tree)
//
// Codec wraps those steps for a single input.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
