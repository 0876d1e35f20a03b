package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

// LinkStore defines the database operations required by LinkProcessor
type LinkStore interface {
	GetProfileBySlug(ctx context.Context, slug string) (store.Profile, error)
	CreateLink(ctx context.Context, params store.CreateLinkParams) (store.Link, error)
	GetLinkByID(ctx context.Context, linkID uuid.UUID) (store.Link, error)
	GetLinksByProfile(ctx context.Context, profileID uuid.UUID) ([]store.Link, error)
	UpdateLink(ctx context.Context, linkID uuid.UUID, params store.UpdateLinkParams) (store.Link, error)
	DeleteLink(ctx context.Context, linkID uuid.UUID) error
	IncrementLinkClicks(ctx context.Context, linkID uuid.UUID) error
}

var (
	ErrLinkNotFound    = errors.New("link not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnauthorized    = errors.New("link does not belong to profile")
)

type LinkProcessor struct {
	store  LinkStore
	logger *observability.Logger
}

func New(store LinkStore, logger *observability.Logger) LinkProcessor {
	return LinkProcessor{
		store:  store,
		logger: logger,
	}
}

// PublicPage is the public rendering payload for a profile slug
type PublicPage struct {
	Profile store.Profile `json:"profile"`
	Links   []store.Link  `json:"links"`
}

// GetPublicPage resolves a slug into the profile and its active links
func (p *LinkProcessor) GetPublicPage(ctx context.Context, slug string) (PublicPage, error) {
	profile, err := p.store.GetProfileBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PublicPage{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to resolve profile slug", err)
		return PublicPage{}, err
	}

	links, err := p.store.GetLinksByProfile(ctx, profile.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to load profile links", err)
		return PublicPage{}, err
	}

	active := []store.Link{}
	for _, link := range links {
		if link.IsActive {
			active = append(active, link)
		}
	}
	return PublicPage{Profile: profile, Links: active}, nil
}

// RecordClick bumps a link's click counter. The link must belong to the
// profile behind the slug so counters cannot be inflated cross-tenant.
func (p *LinkProcessor) RecordClick(ctx context.Context, slug string, linkID uuid.UUID) error {
	profile, err := p.store.GetProfileBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	link, err := p.store.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLinkNotFound
		}
		return err
	}
	if link.ProfileID != profile.ID {
		return ErrLinkNotFound
	}

	if err := p.store.IncrementLinkClicks(ctx, linkID); err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "link_id", Value: linkID.String()})
		p.logger.Error(ctx, "failed to increment link clicks", err)
		return err
	}
	return nil
}

type CreateLinkRequest struct {
	Title    string
	URL      string
	Position int
}

func (p *LinkProcessor) CreateLink(ctx context.Context, profileID uuid.UUID, req CreateLinkRequest) (store.Link, error) {
	link, err := p.store.CreateLink(ctx, store.CreateLinkParams{
		ProfileID: profileID,
		Title:     req.Title,
		URL:       req.URL,
		Position:  req.Position,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create link", err)
		return store.Link{}, err
	}

	p.logger.Info(ctx, "link created",
		observability.Field{Key: "link_id", Value: link.ID.String()},
	)
	return link, nil
}

func (p *LinkProcessor) ListLinks(ctx context.Context, profileID uuid.UUID) ([]store.Link, error) {
	links, err := p.store.GetLinksByProfile(ctx, profileID)
	if err != nil {
		p.logger.Error(ctx, "failed to list links", err)
		return nil, err
	}
	if links == nil {
		links = []store.Link{}
	}
	return links, nil
}

type UpdateLinkRequest struct {
	Title    *string
	URL      *string
	Position *int
	IsActive *bool
}

func (p *LinkProcessor) UpdateLink(ctx context.Context, profileID, linkID uuid.UUID, req UpdateLinkRequest) (store.Link, error) {
	if _, err := p.ownedLink(ctx, profileID, linkID); err != nil {
		return store.Link{}, err
	}

	link, err := p.store.UpdateLink(ctx, linkID, store.UpdateLinkParams{
		Title:    req.Title,
		URL:      req.URL,
		Position: req.Position,
		IsActive: req.IsActive,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to update link", err)
		return store.Link{}, err
	}
	return link, nil
}

func (p *LinkProcessor) DeleteLink(ctx context.Context, profileID, linkID uuid.UUID) error {
	if _, err := p.ownedLink(ctx, profileID, linkID); err != nil {
		return err
	}

	if err := p.store.DeleteLink(ctx, linkID); err != nil {
		p.logger.Error(ctx, "failed to delete link", err)
		return err
	}

	p.logger.Info(ctx, "link deleted",
		observability.Field{Key: "link_id", Value: linkID.String()},
	)
	return nil
}

func (p *LinkProcessor) ownedLink(ctx context.Context, profileID, linkID uuid.UUID) (store.Link, error) {
	link, err := p.store.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Link{}, ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to get link", err)
		return store.Link{}, err
	}
	if link.ProfileID != profileID {
		return store.Link{}, ErrUnauthorized
	}
	return link, nil
}
