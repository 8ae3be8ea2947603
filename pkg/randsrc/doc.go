// Package randsrc provides deterministic, per-stage random sources for
// the packing core. Every stage of a run (sampling a strip-packing
// instance, running one LBF search, ...) derives its own sub-seed from a
// master seed plus a stage name plus a configuration hash, so re-running
// with the same inputs reproduces byte-identical placements while
// different stages never share a sequence.
package randsrc
