// Package axis computes the numeric axes of a chart.
//
// It tries to use or enhance gonum.org/v1/plot.
//
// # Ranges
//
// An Engine turns a data range into an axis range: it optionally forces
// zero into the range, pads both ends by a fraction of the data range and
// rounds the bounds outwards to a multiple of the tick unit. The tick
// unit is the smallest value of a TickUnitSupplier progression that is at
// least the raw spacing obtained by dividing the range into as many
// labels as fit into the axis length.
//
// # Transforms
//
// Three transforms are known:
//   - Linear             the identity
//   - Logarithmic        log_b(v), bounds clamp to DefaultLogMinValue
//   - LogarithmicTime    log_b(1+v) for durations starting at zero
//
// Ticks are spaced evenly in the transformed domain. Log axes get one
// major tick per decade and linearly spaced minor ticks inside it.
//
// # Coordinates
//
// ToDisplay and ToValue map between values and pixels through a Snapshot
// derived from the axis state and widget size. A Snapshot is replaced,
// never updated, whenever bounds, scale or size change.
//
// # Labels
//
// A layout pass formats and measures the labels of the major ticks and
// applies the OverlapPolicy of the axis: labels are skipped, shifted away
// from the axis or drawn with a condensed font. The render package draws
// the resulting Layout onto a gonum canvas.
package axis
