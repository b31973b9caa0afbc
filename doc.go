// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package alg provides composable combining-operation abstractions in Go:
// semigroups, monoids, and reducers, together with sequence folds built on
// them and a family of wrapper types that pin one specific combining
// operation onto an otherwise ambiguous primitive.
//
// # Design Philosophy
//
// alg provides:
//   - Minimal but complete constraint interfaces for combining operations
//   - F-bounded polymorphism for compile-time dispatch and devirtualization
//   - Fold loops driven purely by the contracts, with a reducer fast path
//     that avoids intermediate allocations
//
// # F-Bounded Architecture
//
// The package uses Go F-bounded polymorphism (type T[P T[P]]) as a core
// architectural principle. A carrier type implements its own algebra:
//
//   - [Semigroup]: type Semigroup[T any] — associative Combine
//   - [Monoid]: a Semigroup with a fixed identity value Unit
//   - [Reducer]: a Semigroup with a canonical injection from raw elements
//   - [Wrapper]: a newtype isomorphic to its single inner value
//
// Generic code is parameterized as [S Semigroup[S]] (and so on), so the
// concrete carrier is known at monomorphization time.
//
// Because Go has no nullary associated functions, [Monoid] units and
// [Reducer] injections are value methods that must be receiver-independent:
// generic code calls them on the zero value of the carrier.
//
// # Laws
//
// The contracts are lawful, not merely structural:
//
//   - Associativity: a.Combine(b).Combine(c) == a.Combine(b.Combine(c))
//   - Identity: unit.Combine(x) == x and x.Combine(unit) == x
//   - Reducer equivalence: s.CombineRight(v) is observationally equal to
//     s.Combine(Inject(v)), differing only in cost; likewise CombineLeft
//   - Wrapper round trip: FromInner then IntoInner is the identity
//
// Property tests in this package exercise each law on every instance.
//
// # Built-In Instances
//
// Capability lifts through generic containers:
//
//   - [Option]: absent is neutral; present values combine inner-wise
//   - [OptReducer]: a Reducer lifted through optional absence
//   - [Text]: concatenation monoid and in-place Reducer over string chunks
//   - [List]: order-preserving concatenation monoid and in-place Reducer
//     over slice chunks
//   - [Unit], [Pair], [Triple]: component-wise tuple monoids
//
// # Named Wrappers
//
// Single-field wrapper types fixing one algebraic role per carrier:
//
//   - [Sum], [Product]: numbers under addition / multiplication
//   - [All], [Any]: booleans under AND / OR
//   - [Min], [Max]: bounded ordered values; units are the extremal values
//   - [First], [Last]: left- / right-biased selection (no identity exists,
//     so no Monoid instance)
//
// # Folding
//
// The folds consume any finite [iter.Seq], strictly left to right, single
// pass, always to completion:
//
//   - [FoldMonoid]: start from the unit; empty input yields the unit
//   - [FoldNonempty]: start from the first element; Semigroup only,
//     empty input yields [None]
//   - [FoldMap], [FoldMapNonempty]: map each element first, without
//     materializing an intermediate collection
//   - [FoldReduce], [FoldReduceNonempty]: seed with the injected first
//     element, then fold through CombineRight so in-place specializations
//     run on every step
//
// Associativity is what would license a parallel tree-shaped reduction,
// but the folds here are sequential by contract.
//
// # Example
//
//	sum := alg.FoldMonoid(slices.Values([]alg.Sum[int]{{1}, {2}, {3}}))
//	// sum == alg.Sum[int]{6}
//
//	words := []string{"pickle", "barrel", "kumquat"}
//	catenated := alg.FoldReduce[alg.Text](slices.Values(words))
//	// catenated.String() == "picklebarrelkumquat"
package alg
