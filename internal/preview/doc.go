// Package preview keeps a rendering surface consistent with a project model.
//
// The Store derives render-ready data from the project (Properties,
// ResolveChildren, ResolveSlots, Render), tracks transient interaction state
// (selection and highlight areas, scroll position, modifier keys) and relays
// selection and highlight changes to the host through a message.Sender.
//
// Key concepts:
//   - Document mode gates interaction: clicks select outside Static mode,
//     hovering highlights only in Live mode
//   - Derivations are pure functions of current state, recomputed on every
//     call; nothing is cached
//   - All mutations notify subscribers synchronously, within the call that
//     made them
//
// A Store is driven from a single event loop and is not safe for concurrent
// use.
package preview
