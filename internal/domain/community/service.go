package community

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"visionx-go/internal/domain/authz"
	"visionx-go/internal/domain/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --- Discussion threads ---

type ThreadInput struct {
	Title   string
	Content string
}

func (s *Service) ListThreads(ctx context.Context) ([]DiscussionThread, error) {
	return s.repo.ListThreads(ctx)
}

func (s *Service) GetThread(ctx context.Context, id string) (*DiscussionThread, error) {
	return s.repo.GetThread(ctx, id)
}

func (s *Service) CreateThread(ctx context.Context, p authz.Principal, input ThreadInput) (*DiscussionThread, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, validation.Errorf("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, validation.Errorf("content is required")
	}

	thread := DiscussionThread{
		ID:       uuid.NewString(),
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: p.ID,
	}
	if err := s.repo.CreateThread(ctx, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

func (s *Service) UpdateThread(ctx context.Context, p authz.Principal, id string, input ThreadInput) (*DiscussionThread, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	thread, err := s.repo.GetThread(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, validation.Errorf("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, validation.Errorf("content is required")
	}
	thread.Title = input.Title
	thread.Content = input.Content
	if err := s.repo.SaveThread(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (s *Service) DeleteThread(ctx context.Context, p authz.Principal, id string) error {
	if !p.Authenticated() {
		return ErrNotAllowed
	}
	if _, err := s.repo.GetThread(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteThread(ctx, id)
}

// --- Replies ---

func (s *Service) ListReplies(ctx context.Context) ([]ThreadReply, error) {
	return s.repo.ListReplies(ctx)
}

func (s *Service) ListRepliesByThread(ctx context.Context, threadID string) ([]ThreadReply, error) {
	if _, err := s.repo.GetThread(ctx, threadID); err != nil {
		return nil, err
	}
	return s.repo.ListRepliesByThread(ctx, threadID)
}

func (s *Service) GetReply(ctx context.Context, id string) (*ThreadReply, error) {
	return s.repo.GetReply(ctx, id)
}

func (s *Service) CreateReply(ctx context.Context, p authz.Principal, threadID, content string) (*ThreadReply, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	if strings.TrimSpace(content) == "" {
		return nil, validation.Errorf("content is required")
	}
	if _, err := s.repo.GetThread(ctx, threadID); err != nil {
		return nil, err
	}

	reply := ThreadReply{
		ID:       uuid.NewString(),
		ThreadID: threadID,
		AuthorID: p.ID,
		Content:  content,
	}
	if err := s.repo.CreateReply(ctx, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

type UpdateReplyInput struct {
	ID       string
	ThreadID *string
	Content  *string
}

func (s *Service) UpdateReply(ctx context.Context, p authz.Principal, input UpdateReplyInput) (*ThreadReply, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	reply, err := s.repo.GetReply(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.ThreadID != nil {
		if _, err := s.repo.GetThread(ctx, *input.ThreadID); err != nil {
			return nil, err
		}
		reply.ThreadID = *input.ThreadID
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, validation.Errorf("content is required")
		}
		reply.Content = *input.Content
	}
	if err := s.repo.SaveReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *Service) DeleteReply(ctx context.Context, p authz.Principal, id string) error {
	if !p.Authenticated() {
		return ErrNotAllowed
	}
	if _, err := s.repo.GetReply(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteReply(ctx, id)
}

// --- Resources ---

type ResourceInput struct {
	Title       string
	Description string
	FileURL     string
}

func (s *Service) ListResources(ctx context.Context) ([]Resource, error) {
	return s.repo.ListResources(ctx)
}

func (s *Service) GetResource(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetResource(ctx, id)
}

func (s *Service) CreateResource(ctx context.Context, p authz.Principal, input ResourceInput) (*Resource, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, validation.Errorf("title is required")
	}
	if strings.TrimSpace(input.FileURL) == "" {
		return nil, validation.Errorf("file_url is required")
	}

	uploaderID := p.ID
	resource := Resource{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		FileURL:      input.FileURL,
		UploadedByID: &uploaderID,
	}
	if err := s.repo.CreateResource(ctx, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

type UpdateResourceInput struct {
	ID          string
	Title       *string
	Description *string
	FileURL     *string
}

func (s *Service) UpdateResource(ctx context.Context, p authz.Principal, input UpdateResourceInput) (*Resource, error) {
	if !p.Authenticated() {
		return nil, ErrNotAllowed
	}
	resource, err := s.repo.GetResource(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, validation.Errorf("title is required")
		}
		resource.Title = *input.Title
	}
	if input.Description != nil {
		resource.Description = *input.Description
	}
	if input.FileURL != nil {
		if strings.TrimSpace(*input.FileURL) == "" {
			return nil, validation.Errorf("file_url is required")
		}
		resource.FileURL = *input.FileURL
	}
	if err := s.repo.SaveResource(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *Service) DeleteResource(ctx context.Context, p authz.Principal, id string) error {
	if !p.Authenticated() {
		return ErrNotAllowed
	}
	if _, err := s.repo.GetResource(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteResource(ctx, id)
}
