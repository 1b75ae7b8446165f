// Package huffman implements a lossless byte compressor based on Huffman
// coding.
//
// Compression counts byte frequencies, merges them into a prefix-code tree
// with a deterministic tie-break, assigns a bit string to every byte and
// packs the concatenated codes MSB first behind a one-byte padding header.
//
// Encode and Decode work on the bare padded stream and pass the CodeTable
// explicitly. Compress and Decompress produce and consume a self-contained
// container:
//
//	magic    "HUF\x00"
//	version  1 byte (VersionFullPad or VersionMinimalPad)
//	k        uvarint, number of distinct bytes
//	k times  symbol byte, uvarint count (ascending symbols)
//	crc32    IEEE checksum of the original data, little endian
//	stream   padding count byte, payload
//
// The decoder rebuilds the tree from the counts, so both sides must use the
// same tie-break: nodes are ordered by frequency and then by creation order,
// where leaves are created in ascending byte order.
package huffman
