package usecase

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/ritushop/internal/auth"
	"github.com/phenrril/ritushop/internal/domain"
)

// Client-store keys for the editable sections and the identity record.
// Live content and its draft are independent keys; the presence of a draft
// key is what puts a section in the editing state.
const (
	KeyHero         = "heroData"
	KeyHeroDraft    = "heroDraft"
	KeyStories      = "storiesData"
	KeyStoriesDraft = "storiesDraft"
	KeyUser         = "userData"
)

// ContentUC owns the viewing/editing lifecycle of the hero and stories
// sections. Defaults come from the shipped fixtures; malformed persisted
// content is replaced by them wholesale, never merged.
type ContentUC struct {
	Store          domain.ClientStore
	Authorize      auth.Policy
	HeroDefault    domain.HeroContent
	StoriesDefault domain.StoriesContent
	DefaultUser    domain.UserRecord
}

// User returns the stored identity record, seeding the default one on a
// first visit.
func (uc *ContentUC) User(w http.ResponseWriter, r *http.Request) domain.UserRecord {
	var u domain.UserRecord
	if uc.Store.Load(r, KeyUser, &u) {
		return u
	}
	if err := uc.Store.Save(w, KeyUser, uc.DefaultUser); err != nil {
		log.Error().Err(err).Msg("seed user record")
	}
	return uc.DefaultUser
}

func (uc *ContentUC) SetUser(w http.ResponseWriter, u domain.UserRecord) error {
	return uc.Store.Save(w, KeyUser, u)
}

func (uc *ContentUC) ClearUser(w http.ResponseWriter) {
	uc.Store.Remove(w, KeyUser)
}

// Hero returns the live hero content, falling back to the fixture default
// when nothing usable is stored.
func (uc *ContentUC) Hero(r *http.Request) domain.HeroContent {
	var h domain.HeroContent
	if !uc.Store.Load(r, KeyHero, &h) {
		return uc.HeroDefault
	}
	return h
}

func (uc *ContentUC) Stories(r *http.Request) domain.StoriesContent {
	var s domain.StoriesContent
	if !uc.Store.Load(r, KeyStories, &s) {
		return uc.StoriesDefault
	}
	return s
}

// HeroEditing reports whether a hero draft is in progress.
func (uc *ContentUC) HeroEditing(r *http.Request) bool {
	var h domain.HeroContent
	return uc.Store.Load(r, KeyHeroDraft, &h)
}

func (uc *ContentUC) StoriesEditing(r *http.Request) bool {
	var s domain.StoriesContent
	return uc.Store.Load(r, KeyStoriesDraft, &s)
}

// BeginHeroEdit snapshots the live content into a draft. Only the
// authorized seller identity may enter the editing state.
func (uc *ContentUC) BeginHeroEdit(w http.ResponseWriter, r *http.Request) (domain.HeroContent, error) {
	if err := uc.requireSeller(w, r); err != nil {
		return domain.HeroContent{}, err
	}
	draft := uc.Hero(r)
	if err := uc.Store.Save(w, KeyHeroDraft, draft); err != nil {
		return domain.HeroContent{}, err
	}
	return draft, nil
}

// HeroDraft returns the draft in progress.
func (uc *ContentUC) HeroDraft(r *http.Request) (domain.HeroContent, error) {
	var h domain.HeroContent
	if !uc.Store.Load(r, KeyHeroDraft, &h) {
		return domain.HeroContent{}, domain.ErrNoDraft
	}
	return h, nil
}

// UpdateHeroDraft applies mutate to the draft and persists the new draft.
// The live content is untouched.
func (uc *ContentUC) UpdateHeroDraft(w http.ResponseWriter, r *http.Request, mutate func(*domain.HeroContent) error) (domain.HeroContent, error) {
	draft, err := uc.HeroDraft(r)
	if err != nil {
		return domain.HeroContent{}, err
	}
	if err := mutate(&draft); err != nil {
		return domain.HeroContent{}, err
	}
	if err := uc.Store.Save(w, KeyHeroDraft, draft); err != nil {
		return domain.HeroContent{}, err
	}
	return draft, nil
}

// SaveHero commits the draft: one write replaces the live content, the
// draft key goes away.
func (uc *ContentUC) SaveHero(w http.ResponseWriter, r *http.Request) (domain.HeroContent, error) {
	draft, err := uc.HeroDraft(r)
	if err != nil {
		return domain.HeroContent{}, err
	}
	if err := uc.Store.Save(w, KeyHero, draft); err != nil {
		return domain.HeroContent{}, err
	}
	uc.Store.Remove(w, KeyHeroDraft)
	return draft, nil
}

// CancelHeroEdit discards the draft; live content is unchanged.
func (uc *ContentUC) CancelHeroEdit(w http.ResponseWriter, r *http.Request) error {
	if _, err := uc.HeroDraft(r); err != nil {
		return err
	}
	uc.Store.Remove(w, KeyHeroDraft)
	return nil
}

func (uc *ContentUC) BeginStoriesEdit(w http.ResponseWriter, r *http.Request) (domain.StoriesContent, error) {
	if err := uc.requireSeller(w, r); err != nil {
		return domain.StoriesContent{}, err
	}
	draft := uc.Stories(r)
	if err := uc.Store.Save(w, KeyStoriesDraft, draft); err != nil {
		return domain.StoriesContent{}, err
	}
	return draft, nil
}

func (uc *ContentUC) StoriesDraft(r *http.Request) (domain.StoriesContent, error) {
	var s domain.StoriesContent
	if !uc.Store.Load(r, KeyStoriesDraft, &s) {
		return domain.StoriesContent{}, domain.ErrNoDraft
	}
	return s, nil
}

func (uc *ContentUC) UpdateStoriesDraft(w http.ResponseWriter, r *http.Request, mutate func(*domain.StoriesContent) error) (domain.StoriesContent, error) {
	draft, err := uc.StoriesDraft(r)
	if err != nil {
		return domain.StoriesContent{}, err
	}
	if err := mutate(&draft); err != nil {
		return domain.StoriesContent{}, err
	}
	if err := uc.Store.Save(w, KeyStoriesDraft, draft); err != nil {
		return domain.StoriesContent{}, err
	}
	return draft, nil
}

func (uc *ContentUC) SaveStories(w http.ResponseWriter, r *http.Request) (domain.StoriesContent, error) {
	draft, err := uc.StoriesDraft(r)
	if err != nil {
		return domain.StoriesContent{}, err
	}
	if err := uc.Store.Save(w, KeyStories, draft); err != nil {
		return domain.StoriesContent{}, err
	}
	uc.Store.Remove(w, KeyStoriesDraft)
	return draft, nil
}

func (uc *ContentUC) CancelStoriesEdit(w http.ResponseWriter, r *http.Request) error {
	if _, err := uc.StoriesDraft(r); err != nil {
		return err
	}
	uc.Store.Remove(w, KeyStoriesDraft)
	return nil
}

func (uc *ContentUC) requireSeller(w http.ResponseWriter, r *http.Request) error {
	if uc.Authorize == nil || !uc.Authorize(uc.User(w, r)) {
		return domain.ErrNotAuthorized
	}
	return nil
}
