// Package trigger decides which normalized events become notifications.
//
// The Evaluator is a pure per-source threshold predicate. The Gate is the
// single shared arbiter behind it: it applies the pause switch, duplicate
// suppression and the cross-source cooldown window atomically, so exactly
// one of any set of concurrent qualifying events can win a quiet window.
package trigger
