// Package common contains shared constants and sentinel errors used across
// storyline components.
package common

// MaxPhotoBytes is the largest photo payload the remote API accepts.
// Submissions above this size are rejected before any network or storage
// attempt.
const MaxPhotoBytes = 1_048_576
