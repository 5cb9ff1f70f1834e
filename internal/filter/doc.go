// Package filter provides the 3x3 box blur applied by the pipeline.
//
// The blur replaces every pixel with the per-channel mean of its 3x3
// neighbourhood. Neighbours that fall outside the image are excluded from
// both the sum and the divisor, so corner pixels average 4 samples, edge
// pixels 6 and interior pixels 9. Nothing is zero-padded, clamped or
// reflected; borders therefore keep their brightness instead of darkening
// or smearing the outermost row.
//
// Filters never modify their source and always return a newly allocated
// buffer.
package filter
