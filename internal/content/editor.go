// Package content holds the pure draft-editing helpers for the hero and
// stories sections and the hero rotation schedule. Drafts are plain domain
// values; persistence stays with the caller.
package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/phenrril/ritushop/internal/domain"
)

func NewSlideID(now time.Time) string {
	return fmt.Sprintf("slide_%d", now.UnixMilli())
}

func NewStoryID(now time.Time) string {
	return fmt.Sprintf("story_%d", now.UnixMilli())
}

// SetSlideField edits one field of the slide at index. Field names match
// the serialized form: image, tagline, textColor.
func SetSlideField(h *domain.HeroContent, index int, field, value string) error {
	if index < 0 || index >= len(h.Slides) {
		return fmt.Errorf("slide %d: %w", index, domain.ErrNotFound)
	}
	switch field {
	case "image":
		h.Slides[index].Image = value
	case "tagline":
		h.Slides[index].Tagline = value
	case "textColor":
		c := domain.TextColor(value)
		if !c.Valid() {
			return fmt.Errorf("textColor %q: %w", value, domain.ErrInvalidItem)
		}
		h.Slides[index].TextColor = c
	default:
		return fmt.Errorf("field %q: %w", field, domain.ErrInvalidItem)
	}
	return nil
}

// AddSlide appends a new slide. Image and tagline are required; an empty
// color falls back to white.
func AddSlide(h *domain.HeroContent, image, tagline string, color domain.TextColor, now time.Time) (domain.Slide, error) {
	if strings.TrimSpace(image) == "" || strings.TrimSpace(tagline) == "" {
		return domain.Slide{}, domain.ErrInvalidItem
	}
	if color == "" {
		color = domain.TextColorWhite
	}
	if !color.Valid() {
		return domain.Slide{}, fmt.Errorf("textColor %q: %w", color, domain.ErrInvalidItem)
	}
	s := domain.Slide{ID: NewSlideID(now), Image: image, Tagline: tagline, TextColor: color}
	h.Slides = append(h.Slides, s)
	return s, nil
}

// SetStoryField edits one field of the story at index: image, title,
// description.
func SetStoryField(sc *domain.StoriesContent, index int, field, value string) error {
	if index < 0 || index >= len(sc.Stories) {
		return fmt.Errorf("story %d: %w", index, domain.ErrNotFound)
	}
	switch field {
	case "image":
		sc.Stories[index].Image = value
	case "title":
		sc.Stories[index].Title = value
	case "description":
		sc.Stories[index].Description = value
	default:
		return fmt.Errorf("field %q: %w", field, domain.ErrInvalidItem)
	}
	return nil
}

// AddStory appends a new story; image, title and description are all
// required.
func AddStory(sc *domain.StoriesContent, image, title, description string, now time.Time) (domain.Story, error) {
	if strings.TrimSpace(image) == "" || strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return domain.Story{}, domain.ErrInvalidItem
	}
	st := domain.Story{ID: NewStoryID(now), Image: image, Title: title, Description: description}
	sc.Stories = append(sc.Stories, st)
	return st, nil
}
