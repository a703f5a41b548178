package cli

import (
	"context"
	"fmt"
	"os"
)

// Favorite prompts for a story id and bookmarks the matching story from
// the current list (fresh or cached). The favorite keeps its own copy of
// the story, so it survives cache refreshes.
func (a *App) Favorite(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id", os.Stdout)
	if err != nil {
		return err
	}

	stories, _, err := a.stories.List(ctx, 1, a.config.PageSize, false)
	if err != nil {
		printlnFn("Could not look up story:", err.Error())
		return err
	}

	for _, s := range stories {
		if s.ID == id {
			if _, err := a.favorites.Save(ctx, s); err != nil {
				printlnFn("Could not save favorite:", err.Error())
				return err
			}
			printlnFn("Added to favorites:", s.Name)
			return nil
		}
	}

	printlnFn("No story with id", id, "on the current page")
	return nil
}

// Unfavorite prompts for a story id and removes the bookmark. Removing
// an id that was never bookmarked is not an error.
func (a *App) Unfavorite(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.favorites.Remove(ctx, id); err != nil {
		printlnFn("Could not remove favorite:", err.Error())
		return err
	}
	printlnFn("Removed from favorites.")
	return nil
}

// Favorites lists the bookmarked stories, oldest first.
func (a *App) Favorites(ctx context.Context) error {
	favs, err := a.favorites.List(ctx)
	if err != nil {
		printlnFn("Could not list favorites:", err.Error())
		return err
	}
	if len(favs) == 0 {
		printlnFn("No favorites yet.")
		return nil
	}
	for _, f := range favs {
		printlnFn(fmt.Sprintf("[%s] %s: %s (saved %s)", f.ID, f.Name, f.Description, f.SavedAt))
	}
	return nil
}
