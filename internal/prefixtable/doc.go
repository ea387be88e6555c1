// Package prefixtable computes the shortest prefix of each name in a set
// that uniquely identifies it among the others, for use by a menu that
// accepts either a 1-based index or a typed prefix.
//
// For each item, the smallest length L in [min, max] is found such that
// name[0:L] is a valid prefix (see IsValidPrefix) and no other item's name
// begins with name[0:L]. If no such L exists (including when min exceeds
// the name's length), the item's prefix length is 0, meaning it cannot be
// selected by prefix at all — only by index.
//
// Invariants:
//   - If Compute returns L > 0 for item i, name[i][0:L] is a valid prefix
//     and is not a prefix of any other name in the set.
//   - L is the smallest value in [min, max] with that property.
package prefixtable
