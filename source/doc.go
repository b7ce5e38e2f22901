// Package source provides built-in value sources for buffer fills.
//
// A value source is the value_at(i) function of a fill: a pure,
// deterministic function of the index that every worker of a parallel
// fill may call concurrently. The package includes:
//
//   - Index: value_at(i) = i (default)
//   - Affine: value_at(i) = a*i + b
//   - Polynomial: value_at(i) = c0 + c1*i + c2*i^2 + ...
//   - Hash: XXH3 hash of the index, optionally reduced modulo a bound
//   - Func / FallibleFunc: adapters for caller-supplied functions
//
// Integer arithmetic wraps on overflow, which keeps every source
// deterministic for any length.
package source
