// Package config holds the solver's YAML-loadable configuration: the CDE
// and surrogate generation knobs, the LBF sample budget, and the import
// tolerances. Config.Hash feeds the per-stage RNG derivation in randsrc,
// exactly as the teacher's dungeon Config hash feeds its rng package.
package config
