// Package coordinator owns the cross-cutting view state of the syllabus
// browser: the selected semester, the theme flag and the active overlay.
//
// State is an immutable snapshot. Reduce maps a state and an event to the
// next state and never touches a store, so every transition can be tested
// without a renderer. Coordinator wraps Reduce with the three stores: it
// derives subject rows with live note and PDF counts and forwards
// mutations to the owning store.
package coordinator
