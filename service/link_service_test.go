package service_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/leandrobouwier/Brev.ly/model"
	"github.com/leandrobouwier/Brev.ly/repo"
	"github.com/leandrobouwier/Brev.ly/service"
)

// memStore is an in-memory LinkStore with the same error contract as
// repo.LinkRepo.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	links  []*model.Link
}

var baseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func (m *memStore) Create(_ context.Context, link *model.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.links {
		if existing.Code == link.Code {
			return repo.ErrDuplicateCode
		}
	}

	m.nextID++
	link.ID = m.nextID
	link.CreatedAt = baseTime.Add(time.Duration(m.nextID) * time.Second)
	stored := *link
	m.links = append(m.links, &stored)
	return nil
}

func (m *memStore) Resolve(_ context.Context, code string) (*model.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, link := range m.links {
		if link.Code == code {
			link.Clicks++
			updated := *link
			return &updated, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) List(_ context.Context) ([]model.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Newest first, matching the repo's created_at DESC ordering.
	out := make([]model.Link, 0, len(m.links))
	for i := len(m.links) - 1; i >= 0; i-- {
		out = append(out, *m.links[i])
	}
	return out, nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, link := range m.links {
		if link.ID == id {
			m.links = append(m.links[:i], m.links[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func TestCreateWithSuppliedCode(t *testing.T) {
	svc := service.NewLinkService(&memStore{})

	link, err := svc.Create(context.Background(), "my-code", "https://example.com")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if link.Code != "my-code" {
		t.Errorf("Code is not the supplied one: %s", link.Code)
	}
	if link.Clicks != 0 {
		t.Errorf("New link clicks should be 0, got %d", link.Clicks)
	}
	if link.ID == 0 {
		t.Errorf("Created link has no id")
	}
}

func TestCreateGeneratesCode(t *testing.T) {
	svc := service.NewLinkService(&memStore{})

	link, err := svc.Create(context.Background(), "", "https://example.com")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(link.Code) != 6 {
		t.Errorf("Generated code length is not 6: %s", link.Code)
	}
	if !regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(link.Code) {
		t.Errorf("Generated code is not URL-safe: %s", link.Code)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := service.NewLinkService(&memStore{})

	if _, err := svc.Create(context.Background(), "", "not-a-url"); !errors.Is(err, service.ErrInvalidUrl) {
		t.Errorf("Expected ErrInvalidUrl, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "ab", "https://example.com"); !errors.Is(err, service.ErrInvalidCode) {
		t.Errorf("Expected ErrInvalidCode for short code, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "has space", "https://example.com"); !errors.Is(err, service.ErrInvalidCode) {
		t.Errorf("Expected ErrInvalidCode for unsafe code, got %v", err)
	}
}

func TestCreateDuplicateCode(t *testing.T) {
	store := &memStore{}
	svc := service.NewLinkService(store)

	if _, err := svc.Create(context.Background(), "taken", "https://a.example.com"); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), "taken", "https://b.example.com")
	if !errors.Is(err, repo.ErrDuplicateCode) {
		t.Errorf("Expected ErrDuplicateCode, got %v", err)
	}

	links, _ := svc.List(context.Background())
	count := 0
	for _, link := range links {
		if link.Code == "taken" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one link with the code, got %d", count)
	}
}

func TestResolveIncrementsClicks(t *testing.T) {
	svc := service.NewLinkService(&memStore{})

	created, err := svc.Create(context.Background(), "hits", "https://example.com/page")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for want := int64(1); want <= 3; want++ {
		link, err := svc.Resolve(context.Background(), "hits")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if link.OriginalUrl != created.OriginalUrl {
			t.Errorf("Resolved wrong url: %s", link.OriginalUrl)
		}
		if link.Clicks != want {
			t.Errorf("Clicks after %d resolutions = %d", want, link.Clicks)
		}
	}
}

func TestResolveUnknownCode(t *testing.T) {
	store := &memStore{}
	svc := service.NewLinkService(store)

	if _, err := svc.Create(context.Background(), "known", "https://example.com"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), "missing"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// Codes below the creation minimum never reach the store.
	if _, err := svc.Resolve(context.Background(), "ab"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for short code, got %v", err)
	}

	links, _ := svc.List(context.Background())
	if links[0].Clicks != 0 {
		t.Errorf("Failed resolution mutated a row: clicks = %d", links[0].Clicks)
	}
}

func TestDelete(t *testing.T) {
	svc := service.NewLinkService(&memStore{})

	link, err := svc.Create(context.Background(), "gone", "https://example.com")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), link.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), link.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Second delete should be not-found, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), "gone"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Deleted code still resolves")
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := service.NewLinkService(&memStore{})

	codes := []string{"first", "second", "third"}
	var ids []int64
	for _, code := range codes {
		link, err := svc.Create(context.Background(), code, "https://example.com/"+code)
		if err != nil {
			t.Fatalf("Create %s failed: %v", code, err)
		}
		ids = append(ids, link.ID)
	}

	links, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(links) != 3 {
		t.Fatalf("Expected 3 links, got %d", len(links))
	}
	for i, want := range []string{"third", "second", "first"} {
		if links[i].Code != want {
			t.Errorf("List[%d] = %s, want %s", i, links[i].Code, want)
		}
	}

	if err := svc.Delete(context.Background(), ids[1]); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	links, _ = svc.List(context.Background())
	if len(links) != 2 {
		t.Errorf("Expected 2 links after delete, got %d", len(links))
	}
}

func TestListEmpty(t *testing.T) {
	svc := service.NewLinkService(&memStore{})

	links, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if links == nil {
		t.Errorf("List should return an empty slice, not nil")
	}
	if len(links) != 0 {
		t.Errorf("Expected no links, got %d", len(links))
	}
}
