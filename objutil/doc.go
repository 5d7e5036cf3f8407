// Package objutil holds helpers for keyed collections (maps) and for
// inspecting the dynamic type of a value.
//
// Map iteration order is not stable in Go, so every helper whose result is
// ordered (Pairs, Each, SortedKeys) walks keys in ascending order.
package objutil
