package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/client/services"
	"github.com/dprasetya/storyline/internal/common"
)

// List prints the first page of stories, preferring ones that carry a
// location. When the server cannot be reached the last cached snapshot is
// shown instead, labelled as such.
func (a *App) List(ctx context.Context) error {
	stories, fromCache, err := a.stories.List(ctx, 1, a.config.PageSize, true)
	if err != nil {
		printlnFn("Could not list stories:", err.Error())
		return err
	}

	if fromCache {
		printlnFn("Showing cached stories (server not reachable):")
	}
	if len(stories) == 0 {
		printlnFn("No stories yet.")
		return nil
	}
	for _, s := range stories {
		printlnFn(formatStory(s))
	}
	return nil
}

// Add prompts for a description, a photo file, and optional coordinates,
// then submits the story. Offline or on transport failure the story is
// queued as a local draft.
func (a *App) Add(ctx context.Context) error {
	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	photoPath, err := getSimpleText(a.reader, "Enter photo file path", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := os.ReadFile(photoPath)
	if err != nil {
		printlnFn("Could not read photo:", err.Error())
		return err
	}

	lat, err := getOptionalCoordinate(a.reader, "Enter latitude", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	lon, err := getOptionalCoordinate(a.reader, "Enter longitude", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	story := models.NewStory{
		Description: description,
		Photo:       photo,
		PhotoName:   filepath.Base(photoPath),
		PhotoType:   photoContentType(photoPath),
		Lat:         lat,
		Lon:         lon,
	}

	outcome, err := a.stories.Add(ctx, story)
	if err != nil {
		if errors.Is(err, common.ErrValidationFailed) {
			printlnFn("Story rejected:", err.Error())
		} else {
			printlnFn("Could not add story:", err.Error())
		}
		return err
	}

	switch outcome {
	case services.OutcomePublished:
		printlnFn("Story published!")
	case services.OutcomeQueued:
		printlnFn("You are offline; story saved as a draft and will be uploaded later.")
	}
	return nil
}

// Drafts lists the local drafts with their sync state.
func (a *App) Drafts(ctx context.Context) error {
	drafts, err := a.stories.Drafts(ctx)
	if err != nil {
		printlnFn("Could not list drafts:", err.Error())
		return err
	}
	if len(drafts) == 0 {
		printlnFn("No drafts.")
		return nil
	}
	for _, d := range drafts {
		state := "pending"
		if d.Synced {
			state = "synced"
		}
		printlnFn(fmt.Sprintf("[%s] %s (%s, %d bytes photo)", d.ID, d.Description, state, len(d.Photo)))
	}
	return nil
}

// DeleteDraft prompts for a draft id and removes it.
func (a *App) DeleteDraft(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter draft id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.stories.DeleteDraft(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No draft with id", id)
		} else {
			printlnFn("Could not delete draft:", err.Error())
		}
		return err
	}
	printlnFn("Draft deleted.")
	return nil
}

func formatStory(s models.Story) string {
	line := fmt.Sprintf("[%s] %s: %s", s.ID, s.Name, s.Description)
	if s.Lat != nil && s.Lon != nil {
		line = fmt.Sprintf("%s (%.5f, %.5f)", line, *s.Lat, *s.Lon)
	}
	return line
}

func photoContentType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "image/jpeg"
}
