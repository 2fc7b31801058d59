package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	files    map[string]bool
	statErr  error
	urlErr   error
	urlCalls int
}

func (f *fakeStore) FileExists(_ context.Context, filename string) (bool, error) {
	if f.statErr != nil {
		return false, f.statErr
	}
	return f.files[filename], nil
}

func (f *fakeStore) GetFileURL(_ context.Context, filename string) (string, error) {
	f.urlCalls++
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "https://s3.local/photos/" + filename + "?sig=1", nil
}

type fakeCache struct {
	urls   map[string]string
	ttl    time.Duration
	getErr error
}

func (f *fakeCache) GetPhotoURL(_ context.Context, filename string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	url, ok := f.urls[filename]
	return url, ok, nil
}

func (f *fakeCache) SetPhotoURL(_ context.Context, filename, url string, ttl time.Duration) error {
	f.urls[filename] = url
	f.ttl = ttl
	return nil
}

func TestPhotosWithoutStore(t *testing.T) {
	var nilPhotos *Photos
	if got := nilPhotos.URL(context.Background(), "nu.jpg"); got != PlaceholderURL {
		t.Errorf("nil Photos: got %s", got)
	}

	p := NewPhotos(nil, nil, 0)
	if got := p.URL(context.Background(), "nu.jpg"); got != PlaceholderURL {
		t.Errorf("no store: got %s", got)
	}
	if p.Available(context.Background(), "nu.jpg") {
		t.Error("no store: photo must be unavailable")
	}
}

func TestPhotosURL(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{files: map[string]bool{"nu.jpg": true}}
	p := NewPhotos(store, nil, 0)

	if got := p.URL(ctx, "nu.jpg"); got != "https://s3.local/photos/nu.jpg?sig=1" {
		t.Errorf("existing photo: got %s", got)
	}
	if got := p.URL(ctx, "enu.jpg"); got != PlaceholderURL {
		t.Errorf("missing photo: got %s", got)
	}
	if got := p.URL(ctx, ""); got != PlaceholderURL {
		t.Errorf("empty filename: got %s", got)
	}
}

func TestPhotosStoreErrors(t *testing.T) {
	ctx := context.Background()

	p := NewPhotos(&fakeStore{statErr: errors.New("connection refused")}, nil, 0)
	if got := p.URL(ctx, "nu.jpg"); got != PlaceholderURL {
		t.Errorf("stat error: got %s", got)
	}

	p = NewPhotos(&fakeStore{files: map[string]bool{"nu.jpg": true}, urlErr: errors.New("sign failed")}, nil, 0)
	if got := p.URL(ctx, "nu.jpg"); got != PlaceholderURL {
		t.Errorf("presign error: got %s", got)
	}
}

func TestPhotosCache(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{files: map[string]bool{"nu.jpg": true}}
	cache := &fakeCache{urls: map[string]string{}}
	p := NewPhotos(store, cache, 50*time.Minute)

	first := p.URL(ctx, "nu.jpg")
	second := p.URL(ctx, "nu.jpg")

	if first != second {
		t.Errorf("cached url differs: %s vs %s", first, second)
	}
	if store.urlCalls != 1 {
		t.Errorf("expected one presign call, got %d", store.urlCalls)
	}
	if cache.ttl != 50*time.Minute {
		t.Errorf("cache ttl = %v", cache.ttl)
	}

	p.URL(ctx, "enu.jpg")
	if _, ok := cache.urls["enu.jpg"]; ok {
		t.Error("placeholder must not be cached")
	}
}

func TestPhotosCacheReadError(t *testing.T) {
	store := &fakeStore{files: map[string]bool{"nu.jpg": true}}
	cache := &fakeCache{urls: map[string]string{}, getErr: errors.New("redis down")}
	p := NewPhotos(store, cache, time.Minute)

	if got := p.URL(context.Background(), "nu.jpg"); got != "https://s3.local/photos/nu.jpg?sig=1" {
		t.Errorf("cache error must fall back to store, got %s", got)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"nu.jpg":    "image/jpeg",
		"nu.JPEG":   "image/jpeg",
		"nu.png":    "image/png",
		"nu.webp":   "image/webp",
		"nu.gif":    "image/gif",
		"nu":        "application/octet-stream",
		"nu.tar.gz": "application/octet-stream",
	}
	for name, want := range tests {
		if got := contentType(name); got != want {
			t.Errorf("contentType(%q) = %s, want %s", name, got, want)
		}
	}
}
