// Package task holds the in-memory task store.
//
// A Store is an ordered sequence of tasks plus the counter that allocates the
// next task ID. All business rules live here:
//
//   - IDs come from the counter, never from the current length. For a store
//     built only through Add the two coincide (ID == position + 1).
//   - A task is completed at most once. Completing it again fails with
//     ErrAlreadyCompleted and leaves the store unchanged.
//   - Completing an unknown ID fails with ErrNotFound.
//   - Content is free-form and kept byte for byte, including empty text.
//
// The package does no I/O. Loading and saving live in internal/store.
package task
