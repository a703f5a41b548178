// Package cli implements the interactive storyline client: a REPL over
// the story, favorite, auth, and sync services, with an online status
// watcher that drains pending drafts when connectivity returns.
package cli
