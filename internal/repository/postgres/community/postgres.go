package community

import (
	"context"
	"errors"

	"gorm.io/gorm"

	communitydomain "visionx-go/internal/domain/community"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListThreads(ctx context.Context) ([]communitydomain.DiscussionThread, error) {
	var threads []communitydomain.DiscussionThread
	if err := r.db.WithContext(ctx).Order("updated_at desc").Find(&threads).Error; err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *PostgresRepository) GetThread(ctx context.Context, id string) (*communitydomain.DiscussionThread, error) {
	var thread communitydomain.DiscussionThread
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&thread).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, communitydomain.ErrThreadNotFound
		}
		return nil, err
	}
	return &thread, nil
}

func (r *PostgresRepository) CreateThread(ctx context.Context, thread *communitydomain.DiscussionThread) error {
	return r.db.WithContext(ctx).Create(thread).Error
}

func (r *PostgresRepository) SaveThread(ctx context.Context, thread *communitydomain.DiscussionThread) error {
	return r.db.WithContext(ctx).Save(thread).Error
}

func (r *PostgresRepository) DeleteThread(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&communitydomain.DiscussionThread{}, "id = ?", id).Error
}

func (r *PostgresRepository) ListReplies(ctx context.Context) ([]communitydomain.ThreadReply, error) {
	var replies []communitydomain.ThreadReply
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *PostgresRepository) ListRepliesByThread(ctx context.Context, threadID string) ([]communitydomain.ThreadReply, error) {
	var replies []communitydomain.ThreadReply
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at asc").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *PostgresRepository) GetReply(ctx context.Context, id string) (*communitydomain.ThreadReply, error) {
	var reply communitydomain.ThreadReply
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reply).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, communitydomain.ErrReplyNotFound
		}
		return nil, err
	}
	return &reply, nil
}

func (r *PostgresRepository) CreateReply(ctx context.Context, reply *communitydomain.ThreadReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *PostgresRepository) SaveReply(ctx context.Context, reply *communitydomain.ThreadReply) error {
	return r.db.WithContext(ctx).Save(reply).Error
}

func (r *PostgresRepository) DeleteReply(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&communitydomain.ThreadReply{}, "id = ?", id).Error
}

func (r *PostgresRepository) ListResources(ctx context.Context) ([]communitydomain.Resource, error) {
	var resources []communitydomain.Resource
	if err := r.db.WithContext(ctx).Order("uploaded_at desc").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *PostgresRepository) GetResource(ctx context.Context, id string) (*communitydomain.Resource, error) {
	var resource communitydomain.Resource
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, communitydomain.ErrResourceNotFound
		}
		return nil, err
	}
	return &resource, nil
}

func (r *PostgresRepository) CreateResource(ctx context.Context, resource *communitydomain.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *PostgresRepository) SaveResource(ctx context.Context, resource *communitydomain.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *PostgresRepository) DeleteResource(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&communitydomain.Resource{}, "id = ?", id).Error
}
