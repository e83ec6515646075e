package community

import (
	"context"
	"errors"
	"testing"

	"visionx-go/internal/domain/authz"
	"visionx-go/internal/domain/validation"
)

type fakeCommunityRepo struct {
	threads   map[string]*DiscussionThread
	replies   map[string]*ThreadReply
	resources map[string]*Resource
}

func newFakeCommunityRepo() *fakeCommunityRepo {
	return &fakeCommunityRepo{
		threads:   make(map[string]*DiscussionThread),
		replies:   make(map[string]*ThreadReply),
		resources: make(map[string]*Resource),
	}
}

func (r *fakeCommunityRepo) ListThreads(ctx context.Context) ([]DiscussionThread, error) {
	result := make([]DiscussionThread, 0)
	for _, thread := range r.threads {
		result = append(result, *thread)
	}
	return result, nil
}

func (r *fakeCommunityRepo) GetThread(ctx context.Context, id string) (*DiscussionThread, error) {
	thread, ok := r.threads[id]
	if !ok {
		return nil, ErrThreadNotFound
	}
	return thread, nil
}

func (r *fakeCommunityRepo) CreateThread(ctx context.Context, thread *DiscussionThread) error {
	r.threads[thread.ID] = thread
	return nil
}

func (r *fakeCommunityRepo) SaveThread(ctx context.Context, thread *DiscussionThread) error {
	r.threads[thread.ID] = thread
	return nil
}

func (r *fakeCommunityRepo) DeleteThread(ctx context.Context, id string) error {
	delete(r.threads, id)
	return nil
}

func (r *fakeCommunityRepo) ListReplies(ctx context.Context) ([]ThreadReply, error) {
	result := make([]ThreadReply, 0)
	for _, reply := range r.replies {
		result = append(result, *reply)
	}
	return result, nil
}

func (r *fakeCommunityRepo) ListRepliesByThread(ctx context.Context, threadID string) ([]ThreadReply, error) {
	result := make([]ThreadReply, 0)
	for _, reply := range r.replies {
		if reply.ThreadID == threadID {
			result = append(result, *reply)
		}
	}
	return result, nil
}

func (r *fakeCommunityRepo) GetReply(ctx context.Context, id string) (*ThreadReply, error) {
	reply, ok := r.replies[id]
	if !ok {
		return nil, ErrReplyNotFound
	}
	return reply, nil
}

func (r *fakeCommunityRepo) CreateReply(ctx context.Context, reply *ThreadReply) error {
	r.replies[reply.ID] = reply
	return nil
}

func (r *fakeCommunityRepo) SaveReply(ctx context.Context, reply *ThreadReply) error {
	r.replies[reply.ID] = reply
	return nil
}

func (r *fakeCommunityRepo) DeleteReply(ctx context.Context, id string) error {
	delete(r.replies, id)
	return nil
}

func (r *fakeCommunityRepo) ListResources(ctx context.Context) ([]Resource, error) {
	result := make([]Resource, 0)
	for _, resource := range r.resources {
		result = append(result, *resource)
	}
	return result, nil
}

func (r *fakeCommunityRepo) GetResource(ctx context.Context, id string) (*Resource, error) {
	resource, ok := r.resources[id]
	if !ok {
		return nil, ErrResourceNotFound
	}
	return resource, nil
}

func (r *fakeCommunityRepo) CreateResource(ctx context.Context, resource *Resource) error {
	r.resources[resource.ID] = resource
	return nil
}

func (r *fakeCommunityRepo) SaveResource(ctx context.Context, resource *Resource) error {
	r.resources[resource.ID] = resource
	return nil
}

func (r *fakeCommunityRepo) DeleteResource(ctx context.Context, id string) error {
	delete(r.resources, id)
	return nil
}

func member(id string) authz.Principal {
	return authz.Principal{ID: id, Username: "member", Role: authz.RolePlayer}
}

func TestCreateThreadRequiresAuth(t *testing.T) {
	svc := NewService(newFakeCommunityRepo())

	_, err := svc.CreateThread(context.Background(), authz.Principal{}, ThreadInput{
		Title:   "Welcome",
		Content: "First post",
	})
	if !errors.Is(err, ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed for anonymous caller, got %v", err)
	}

	thread, err := svc.CreateThread(context.Background(), member("u-1"), ThreadInput{
		Title:   "Welcome",
		Content: "First post",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if thread.AuthorID != "u-1" {
		t.Fatalf("expected caller as author, got %q", thread.AuthorID)
	}
}

func TestCreateThreadRequiresTitleAndContent(t *testing.T) {
	svc := NewService(newFakeCommunityRepo())

	_, err := svc.CreateThread(context.Background(), member("u-1"), ThreadInput{Content: "body"})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}

	_, err = svc.CreateThread(context.Background(), member("u-1"), ThreadInput{Title: "title"})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error for missing content, got %v", err)
	}
}

func TestCreateReplyUnknownThread(t *testing.T) {
	svc := NewService(newFakeCommunityRepo())

	_, err := svc.CreateReply(context.Background(), member("u-1"), "missing", "hello")
	if !errors.Is(err, ErrThreadNotFound) {
		t.Fatalf("expected ErrThreadNotFound, got %v", err)
	}
}

func TestListRepliesByThread(t *testing.T) {
	repo := newFakeCommunityRepo()
	repo.threads["th-1"] = &DiscussionThread{ID: "th-1", Title: "Welcome", AuthorID: "u-1"}
	repo.replies["re-1"] = &ThreadReply{ID: "re-1", ThreadID: "th-1", AuthorID: "u-2", Content: "hi"}
	repo.replies["re-2"] = &ThreadReply{ID: "re-2", ThreadID: "other", AuthorID: "u-2", Content: "elsewhere"}

	svc := NewService(repo)
	replies, err := svc.ListRepliesByThread(context.Background(), "th-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(replies) != 1 || replies[0].ID != "re-1" {
		t.Fatalf("expected only re-1, got %v", replies)
	}

	_, err = svc.ListRepliesByThread(context.Background(), "missing")
	if !errors.Is(err, ErrThreadNotFound) {
		t.Fatalf("expected ErrThreadNotFound, got %v", err)
	}
}

func TestUpdateReply(t *testing.T) {
	repo := newFakeCommunityRepo()
	repo.threads["th-1"] = &DiscussionThread{ID: "th-1", Title: "Welcome", AuthorID: "u-1"}
	repo.replies["re-1"] = &ThreadReply{ID: "re-1", ThreadID: "th-1", AuthorID: "u-2", Content: "hi"}

	svc := NewService(repo)
	content := "hello again"

	_, err := svc.UpdateReply(context.Background(), authz.Principal{}, UpdateReplyInput{ID: "re-1", Content: &content})
	if !errors.Is(err, ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed for anonymous caller, got %v", err)
	}

	reply, err := svc.UpdateReply(context.Background(), member("u-2"), UpdateReplyInput{ID: "re-1", Content: &content})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reply.Content != "hello again" {
		t.Fatalf("expected updated content, got %q", reply.Content)
	}
	if reply.ThreadID != "th-1" {
		t.Fatalf("expected thread untouched, got %q", reply.ThreadID)
	}

	empty := "  "
	_, err = svc.UpdateReply(context.Background(), member("u-2"), UpdateReplyInput{ID: "re-1", Content: &empty})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error for blank content, got %v", err)
	}

	missing := "missing"
	_, err = svc.UpdateReply(context.Background(), member("u-2"), UpdateReplyInput{ID: "re-1", ThreadID: &missing})
	if !errors.Is(err, ErrThreadNotFound) {
		t.Fatalf("expected ErrThreadNotFound, got %v", err)
	}
}

func TestUpdateResource(t *testing.T) {
	repo := newFakeCommunityRepo()
	uploader := "u-1"
	repo.resources["rs-1"] = &Resource{
		ID:           "rs-1",
		Title:        "Drills",
		FileURL:      "https://cdn.example.com/drills.pdf",
		UploadedByID: &uploader,
	}

	svc := NewService(repo)
	title := "Warmup drills"

	resource, err := svc.UpdateResource(context.Background(), member("u-2"), UpdateResourceInput{
		ID:    "rs-1",
		Title: &title,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resource.Title != "Warmup drills" {
		t.Fatalf("expected updated title, got %q", resource.Title)
	}
	if resource.FileURL != "https://cdn.example.com/drills.pdf" {
		t.Fatalf("expected file_url untouched, got %q", resource.FileURL)
	}
	if resource.UploadedByID == nil || *resource.UploadedByID != "u-1" {
		t.Fatalf("expected uploader unchanged, got %v", resource.UploadedByID)
	}

	blank := ""
	_, err = svc.UpdateResource(context.Background(), member("u-2"), UpdateResourceInput{ID: "rs-1", FileURL: &blank})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error for blank file_url, got %v", err)
	}

	_, err = svc.UpdateResource(context.Background(), authz.Principal{}, UpdateResourceInput{ID: "rs-1"})
	if !errors.Is(err, ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed for anonymous caller, got %v", err)
	}
}

func TestCreateResource(t *testing.T) {
	svc := NewService(newFakeCommunityRepo())

	_, err := svc.CreateResource(context.Background(), member("u-1"), ResourceInput{Title: "Drills"})
	if _, ok := validation.AsError(err); !ok {
		t.Fatalf("expected validation error for missing file_url, got %v", err)
	}

	resource, err := svc.CreateResource(context.Background(), member("u-1"), ResourceInput{
		Title:   "Drills",
		FileURL: "https://cdn.example.com/drills.pdf",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resource.UploadedByID == nil || *resource.UploadedByID != "u-1" {
		t.Fatalf("expected uploader u-1, got %v", resource.UploadedByID)
	}
}
