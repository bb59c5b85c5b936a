// Package model holds the in-memory design document the preview renders.
//
// A Project owns pages, a tree of Elements connected through ElementContents
// (slots), the ElementActions event handlers refer to, and the Patterns
// (component definitions) elements instantiate. It also carries the
// transient selection and highlight references shared by the editor and the
// preview.
//
// Key concepts:
//   - Element: a node in the render tree, instance of a Pattern
//   - ElementContent: a named slot of an Element holding child Elements
//   - ElementProperty: a value bound to a PatternProperty; event handler
//     properties hold ElementAction ids
//   - Project.Subscribe: synchronous notification of every mutation
//
// Invariants enforced by Project:
//   - at most one selected element, highlighted element, highlighted
//     content, and active page
//   - selection and highlight references only point into the project tree
//   - Root-role elements are never selected or highlighted
package model
