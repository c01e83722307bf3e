// Package projection computes bounded-growth forecasts of the renewable
// share and the resulting CO2 reduction. The engine is a pure function of
// its Input: it performs no I/O, keeps no state between calls and may be
// used concurrently. Range checks on caller supplied values live in Policy
// and are applied at the boundary, never inside the engine.
package projection
