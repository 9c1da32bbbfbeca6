package domain

// TextColor is the display color of a hero tagline.
type TextColor string

const (
	TextColorWhite  TextColor = "white"
	TextColorPurple TextColor = "purple"
)

func (c TextColor) Valid() bool {
	return c == TextColorWhite || c == TextColorPurple
}

// Slide ids are generated from the creation timestamp (slide_<unix-ms>).
type Slide struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Tagline   string    `json:"tagline"`
	TextColor TextColor `json:"textColor,omitempty"`
}

type HeroContent struct {
	Slides []Slide `json:"slides"`
}

type Story struct {
	ID          string `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type StoriesContent struct {
	Visible bool    `json:"visible"`
	Title   string  `json:"title"`
	Stories []Story `json:"stories"`
}
