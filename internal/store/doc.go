// Package store persists a task.Store in a single local JSON file.
//
// # File Layout
//
// Every save writes the current layout:
//
//	{
//	  "schema_version": 1,
//	  "next_id": 3,
//	  "tasks": [
//	    {"id": 1, "content": "buy milk", "completed": true},
//	    {"id": 2, "content": "walk dog", "completed": false}
//	  ]
//	}
//
// Load also accepts the legacy layout, a bare array of tasks. The next ID of
// a legacy file is derived from its tasks. The next save upgrades the file.
//
// # Load Policy
//
//   - Missing file: empty store, no error.
//   - Empty or whitespace-only file: empty store, no error.
//   - Anything that fails schema.cue or JSON decoding: *ParseError. The file
//     is never rewritten on this path, so a corrupt file is kept for repair.
//
// # Writes
//
// Save writes a temp file in the same directory and renames it over the
// task file, so readers see either the old or the new content.
//
// Writers serialize through Lock, an exclusive lock file next to the task
// file. The lock covers the whole load, mutate, save cycle.
package store
