// Package compress provides the pluggable compression codecs an Archive
// applies to a Storage snapshot before handing it to a blobstore.
//
// Three codecs are registered by default: zstd (klauspost/compress), lz4
// (pierrec/lz4) and none (passthrough). Additional codecs can be added at
// runtime with Register.
package compress
