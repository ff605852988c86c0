// Package cli provides the interactive SunVoyage portal command-line client.
//
// It wires configuration, the sqlite state store, the portal API client, and
// an interactive REPL. Typical flow: restore a saved session (or prompt for
// credentials), start the background session heartbeat, and execute user
// commands.
//
// Key features:
//   - Login / Logout with automatic logout on session invalidation
//   - Hotel search with category and filter selection, restorable results
//   - Agency and Euro-trip profile screens
//   - Admin entity lists and the user-activity report
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
