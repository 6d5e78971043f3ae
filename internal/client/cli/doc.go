// Package cli implements the sanmitsu command-line client: a cobra command
// tree whose root starts an interactive shell for editing, listing and
// syncing practice entries.
//
// Entries are always written to the local store first. Sync runs after every
// write, on demand, and whenever the online watcher sees the server come back.
package cli
