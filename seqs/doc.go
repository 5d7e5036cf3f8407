/*
Package seqs provides generators and folds over Go iterators (iter.Seq).

It is the lazy half of the library. The slice helpers in sliceutil and the
puzzle solutions in internal/euler build on it:

  - **Generators**: [Range], [Times], [Repeat].
  - **Transformations**: [Map], [Filter], [Reject], [Concat], [Distinct], [Enumerate].
  - **Folds**: [Reduce], [Sum], [Min], [Max], [First], [Last], [Count], [Any], [All].

Every function here is single-pass and allocation-free except [Distinct],
which keeps a set of the values it has already yielded.

	// Sum of the multiples of 3 or 5 below 10.
	multiples := seqs.Filter(seqs.Range(0, 10, 1), func(n int) bool {
		return n%3 == 0 || n%5 == 0
	})
	total := seqs.Sum(multiples) // 23
*/
package seqs
