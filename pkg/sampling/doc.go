// Package sampling provides the two transformation samplers used by the
// LBF search: a uniform sampler that covers a bounding rectangle and an
// item's full rotation domain, and a local-search sampler that draws a
// Gaussian perturbation around a reference transform with a standard
// deviation that decays as the search converges.
package sampling
