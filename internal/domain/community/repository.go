package community

import "context"

type Repository interface {
	ListThreads(ctx context.Context) ([]DiscussionThread, error)
	GetThread(ctx context.Context, id string) (*DiscussionThread, error)
	CreateThread(ctx context.Context, thread *DiscussionThread) error
	SaveThread(ctx context.Context, thread *DiscussionThread) error
	DeleteThread(ctx context.Context, id string) error

	ListReplies(ctx context.Context) ([]ThreadReply, error)
	ListRepliesByThread(ctx context.Context, threadID string) ([]ThreadReply, error)
	GetReply(ctx context.Context, id string) (*ThreadReply, error)
	CreateReply(ctx context.Context, reply *ThreadReply) error
	SaveReply(ctx context.Context, reply *ThreadReply) error
	DeleteReply(ctx context.Context, id string) error

	ListResources(ctx context.Context) ([]Resource, error)
	GetResource(ctx context.Context, id string) (*Resource, error)
	CreateResource(ctx context.Context, resource *Resource) error
	SaveResource(ctx context.Context, resource *Resource) error
	DeleteResource(ctx context.Context, id string) error
}
