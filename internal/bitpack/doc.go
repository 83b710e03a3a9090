// Package bitpack provides the bit-packed building blocks the coloring
// store concatenates all of its color sets into: a plain bit vector with
// O(1) rank-1 support, and a fixed-width packed integer vector whose
// element width is chosen once for the whole vector.
//
// Both types come in two flavors: a growable Builder used while a Storage
// is being filled by repeated AddSet calls, and a frozen, packed form
// produced by Builder.Freeze once Finalize runs. This mirrors sdsl-lite's
// split between a std::vector<bool>/std::vector<int64_t> staging area and
// the packed sdsl::bit_vector/sdsl::int_vector<> the original coloring
// structure freezes into (see Color_Set_Storage::prepare_for_queries in
// the retrieved original source).
package bitpack
