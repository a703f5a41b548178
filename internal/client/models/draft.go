package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dprasetya/storyline/internal/common"
	"github.com/google/uuid"
)

// NewStory is the input of a story submission, validated before any network
// or storage attempt.
type NewStory struct {
	Description string
	Photo       []byte
	PhotoName   string
	PhotoType   string
	Lat         *float64
	Lon         *float64
}

// Validate checks the submission against the remote API's constraints:
// non-empty description, non-empty photo of at most common.MaxPhotoBytes,
// and coordinates that are either both present or both absent.
func (s NewStory) Validate() error {
	if strings.TrimSpace(s.Description) == "" {
		return fmt.Errorf("%w: description is required", common.ErrValidationFailed)
	}
	if len(s.Photo) == 0 {
		return fmt.Errorf("%w: photo is required", common.ErrValidationFailed)
	}
	if len(s.Photo) > common.MaxPhotoBytes {
		return fmt.Errorf("%w: photo exceeds %d bytes", common.ErrValidationFailed, common.MaxPhotoBytes)
	}
	if (s.Lat == nil) != (s.Lon == nil) {
		return fmt.Errorf("%w: lat and lon must be given together", common.ErrValidationFailed)
	}
	return nil
}

// Draft is a story authored while offline or after a failed remote
// submission, held locally until reconciliation uploads it.
type Draft struct {
	ID          string
	Description string
	Photo       []byte
	PhotoName   string
	PhotoType   string
	Lat         *float64
	Lon         *float64
	CreatedAt   string
	Synced      bool
}

// NewDraft builds a Draft from a validated submission, stamping it with a
// time-based id and an ISO-8601 creation time.
func NewDraft(s NewStory, now time.Time) Draft {
	name := s.PhotoName
	if name == "" {
		name = "photo.jpg"
	}
	mediaType := s.PhotoType
	if mediaType == "" {
		mediaType = "image/jpeg"
	}
	return Draft{
		ID:          newDraftID(now),
		Description: s.Description,
		Photo:       s.Photo,
		PhotoName:   name,
		PhotoType:   mediaType,
		Lat:         s.Lat,
		Lon:         s.Lon,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}
}

// newDraftID generates a time-ordered id that stays unique even when two
// drafts are created within the same millisecond.
func newDraftID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// Favorite is a user-curated bookmark of a server story. It stores a
// denormalized copy of the story, so it survives cache refreshes.
type Favorite struct {
	ID          string
	Name        string
	Description string
	PhotoURL    string
	Lat         *float64
	Lon         *float64
	CreatedAt   string
	SavedAt     string
}
