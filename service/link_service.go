package service

import (
	"context"
	"errors"

	"github.com/leandrobouwier/Brev.ly/model"
	"github.com/leandrobouwier/Brev.ly/repo"
	"github.com/leandrobouwier/Brev.ly/util"
)

// Validation failures, detected before any store call.
var (
	ErrInvalidUrl  = errors.New("url must be an absolute http or https address")
	ErrInvalidCode = errors.New("code must be at least 3 URL-safe characters")
)

// LinkStore is what the service needs from the persistence layer.
type LinkStore interface {
	Create(ctx context.Context, link *model.Link) error
	Resolve(ctx context.Context, code string) (*model.Link, error)
	List(ctx context.Context) ([]model.Link, error)
	Delete(ctx context.Context, id int64) error
}

type LinkService struct {
	store LinkStore
}

func NewLinkService(store LinkStore) *LinkService {
	return &LinkService{store: store}
}

// Create inserts a new link, generating a short code when the caller
// supplies none. A generated code that collides with an existing one
// fails the same way a user-supplied duplicate does; there is no
// retry loop.
func (s *LinkService) Create(ctx context.Context, code string, url string) (*model.Link, error) {
	if !util.IsUrlValid(url) {
		return nil, ErrInvalidUrl
	}

	if code == "" {
		code = util.GenCode()
	} else if !util.IsCodeValid(code) {
		return nil, ErrInvalidCode
	}

	link := &model.Link{
		Code:        code,
		OriginalUrl: url,
	}

	if err := s.store.Create(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// Resolve looks up a code, counts the click and returns the link to
// redirect to. Codes shorter than the creation minimum can never
// exist, so they resolve to not-found without touching the store.
func (s *LinkService) Resolve(ctx context.Context, code string) (*model.Link, error) {
	if len(code) < 3 {
		return nil, repo.ErrNotFound
	}
	return s.store.Resolve(ctx, code)
}

// List returns every link, newest first.
func (s *LinkService) List(ctx context.Context) ([]model.Link, error) {
	links, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []model.Link{}
	}
	return links, nil
}

func (s *LinkService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
