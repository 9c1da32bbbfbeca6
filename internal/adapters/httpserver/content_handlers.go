package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/phenrril/ritushop/internal/content"
	"github.com/phenrril/ritushop/internal/domain"
)

func (s *Server) handleHero(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	writeJSON(w, 200, map[string]any{
		"hero":    s.content.Hero(r),
		"current": s.rotator.Current(),
		"editing": s.content.HeroEditing(r),
	})
}

func (s *Server) handleHeroAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	action := strings.TrimPrefix(r.URL.Path, "/api/content/hero/")
	switch action {
	case "next":
		writeJSON(w, 200, map[string]int{"current": s.rotator.Next()})
	case "prev":
		writeJSON(w, 200, map[string]int{"current": s.rotator.Prev()})
	case "select":
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		writeJSON(w, 200, map[string]int{"current": s.rotator.Select(req.Index)})
	case "edit":
		draft, err := s.content.BeginHeroEdit(w, r)
		if err != nil {
			contentError(w, err)
			return
		}
		// rotation is suspended for the whole editing session
		s.rotator.Suspend()
		writeJSON(w, 200, map[string]any{"draft": draft})
	case "slide":
		var req struct {
			Index int    `json:"index"`
			Field string `json:"field"`
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		draft, err := s.content.UpdateHeroDraft(w, r, func(h *domain.HeroContent) error {
			return content.SetSlideField(h, req.Index, req.Field, req.Value)
		})
		if err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"draft": draft})
	case "slide/add":
		var req struct {
			Image     string `json:"image"`
			Tagline   string `json:"tagline"`
			TextColor string `json:"textColor"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		draft, err := s.content.UpdateHeroDraft(w, r, func(h *domain.HeroContent) error {
			_, err := content.AddSlide(h, req.Image, req.Tagline, domain.TextColor(req.TextColor), time.Now())
			return err
		})
		if err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"draft": draft})
	case "save":
		saved, err := s.content.SaveHero(w, r)
		if err != nil {
			contentError(w, err)
			return
		}
		s.rotator.Resume(len(saved.Slides))
		writeJSON(w, 200, map[string]any{"hero": saved})
	case "cancel":
		if err := s.content.CancelHeroEdit(w, r); err != nil {
			contentError(w, err)
			return
		}
		s.rotator.Resume(len(s.content.Hero(r).Slides))
		writeJSON(w, 200, map[string]any{"hero": s.content.Hero(r)})
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleStories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	writeJSON(w, 200, map[string]any{
		"stories": s.content.Stories(r),
		"editing": s.content.StoriesEditing(r),
	})
}

func (s *Server) handleStoriesAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	action := strings.TrimPrefix(r.URL.Path, "/api/content/stories/")
	switch action {
	case "edit":
		draft, err := s.content.BeginStoriesEdit(w, r)
		if err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"draft": draft})
	case "story":
		var req struct {
			Index int    `json:"index"`
			Field string `json:"field"`
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		draft, err := s.content.UpdateStoriesDraft(w, r, func(sc *domain.StoriesContent) error {
			return content.SetStoryField(sc, req.Index, req.Field, req.Value)
		})
		if err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"draft": draft})
	case "story/add":
		var req struct {
			Image       string `json:"image"`
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		draft, err := s.content.UpdateStoriesDraft(w, r, func(sc *domain.StoriesContent) error {
			_, err := content.AddStory(sc, req.Image, req.Title, req.Description, time.Now())
			return err
		})
		if err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"draft": draft})
	case "title":
		var req struct {
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", 400)
			return
		}
		draft, err := s.content.UpdateStoriesDraft(w, r, func(sc *domain.StoriesContent) error {
			sc.Title = req.Value
			return nil
		})
		if err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"draft": draft})
	case "visibility":
		draft, err := s.content.UpdateStoriesDraft(w, r, func(sc *domain.StoriesContent) error {
			sc.Visible = !sc.Visible
			return nil
		})
		if err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"draft": draft})
	case "save":
		saved, err := s.content.SaveStories(w, r)
		if err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"stories": saved})
	case "cancel":
		if err := s.content.CancelStoriesEdit(w, r); err != nil {
			contentError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"stories": s.content.Stories(r)})
	default:
		http.NotFound(w, r)
	}
}

// contentError maps usecase errors onto status codes.
func contentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthorized):
		http.Error(w, "forbidden", 403)
	case errors.Is(err, domain.ErrNoDraft):
		http.Error(w, "no draft", 409)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "index", 404)
	case errors.Is(err, domain.ErrInvalidItem):
		http.Error(w, err.Error(), 400)
	default:
		http.Error(w, "content", 500)
	}
}
