package storage

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// PlaceholderURL отдается, когда фото вуза еще не загружено
const PlaceholderURL = "https://via.placeholder.com/300x200?text=University+Photo"

type ObjectStore interface {
	FileExists(ctx context.Context, filename string) (bool, error)
	GetFileURL(ctx context.Context, filename string) (string, error)
}

type URLCache interface {
	GetPhotoURL(ctx context.Context, filename string) (string, bool, error)
	SetPhotoURL(ctx context.Context, filename, url string, ttl time.Duration) error
}

// Photos превращает photo_filename в ссылку на картинку.
// Хранилище и кэш могут отсутствовать.
type Photos struct {
	store    ObjectStore
	cache    URLCache
	cacheTTL time.Duration
}

func NewPhotos(store ObjectStore, cache URLCache, cacheTTL time.Duration) *Photos {
	return &Photos{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// URL возвращает ссылку на фото или PlaceholderURL.
// Ошибки хранилища и кэша не пробрасываются, только логируются.
func (p *Photos) URL(ctx context.Context, filename string) string {
	if p == nil || p.store == nil || filename == "" {
		return PlaceholderURL
	}

	if p.cache != nil {
		url, ok, err := p.cache.GetPhotoURL(ctx, filename)
		if err != nil {
			logrus.Warnf("photo url cache read failed for %s: %v", filename, err)
		} else if ok {
			return url
		}
	}

	exists, err := p.store.FileExists(ctx, filename)
	if err != nil {
		logrus.Warnf("photo %s check failed: %v", filename, err)
		return PlaceholderURL
	}
	if !exists {
		return PlaceholderURL
	}

	url, err := p.store.GetFileURL(ctx, filename)
	if err != nil {
		logrus.Warnf("photo %s url failed: %v", filename, err)
		return PlaceholderURL
	}

	if p.cache != nil {
		if err := p.cache.SetPhotoURL(ctx, filename, url, p.cacheTTL); err != nil {
			logrus.Warnf("photo url cache write failed for %s: %v", filename, err)
		}
	}

	return url
}

// Available сообщает, загружено ли фото.
func (p *Photos) Available(ctx context.Context, filename string) bool {
	return p.URL(ctx, filename) != PlaceholderURL
}
