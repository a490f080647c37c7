// Package annotate converts normalized detection geometry into pixel space
// and burns box outlines and label readouts into a drawable image.
//
// Drawing is collision-tolerant rather than collision-avoiding: instances are
// rendered in result order and later draws may overlap earlier ones. Pixels
// that fall outside the canvas are skipped, so oversized or out-of-range
// boxes degrade to partial drawings instead of errors.
package annotate
