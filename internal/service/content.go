package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
	"github.com/inkwell/inkwell-backend/internal/repository"
)

// ContentService owns the blog post and promotion lifecycle: slug
// assignment, the draft/published/archived state machine, and
// author-scoped mutation.
type ContentService struct {
	posts  PostStore
	promos PromotionStore
	logger *zap.SugaredLogger
}

func NewContentService(posts PostStore, promos PromotionStore, logger *zap.SugaredLogger) *ContentService {
	return &ContentService{posts: posts, promos: promos, logger: logger}
}

type CreatePostInput struct {
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	Status        string
	ReadTime      int
	FeaturedImage string
}

type UpdatePostInput struct {
	Title         *string
	Slug          *string
	Content       *string
	Excerpt       *string
	ReadTime      *int
	FeaturedImage *string
}

func (s *ContentService) CreatePost(ctx context.Context, author *blog.User, in CreatePostInput) (*blog.BlogPost, error) {
	status := blog.StatusDraft
	if in.Status != "" {
		status = blog.Status(in.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	slug := in.Slug
	if slug == "" {
		slug = blog.Slugify(in.Title)
	}

	readTime := in.ReadTime
	if readTime <= 0 {
		readTime = blog.EstimateReadTime(in.Content)
	}

	post := &blog.BlogPost{
		AuthorID:      author.ID,
		Title:         in.Title,
		Slug:          slug,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Status:        status,
		ReadTime:      readTime,
		FeaturedImage: in.FeaturedImage,
	}

	// A post born published gets its publish time at creation.
	if status == blog.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.posts.Create(ctx, post); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Infow("Post created", "post_id", post.ID, "slug", post.Slug, "author_id", author.ID)
	return post, nil
}

func (s *ContentService) GetPublishedPost(ctx context.Context, slug string) (*blog.BlogPost, error) {
	post, err := s.posts.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}

func (s *ContentService) ListPublishedPosts(ctx context.Context) ([]*blog.BlogPost, error) {
	return s.posts.ListPublished(ctx)
}

func (s *ContentService) ListAllPosts(ctx context.Context) ([]*blog.BlogPost, error) {
	return s.posts.ListAll(ctx)
}

func (s *ContentService) PostCounts(ctx context.Context, id int64) (likes, bookmarks, comments int64, err error) {
	return s.posts.Counts(ctx, id)
}

// UpdatePost applies a partial, author-scoped update. The slug is left
// alone unless the request names it: a non-empty value replaces it, an
// explicit empty value re-derives it from the (possibly new) title.
func (s *ContentService) UpdatePost(ctx context.Context, actor *blog.User, id int64, in UpdatePostInput) (*blog.BlogPost, error) {
	post, err := s.ownedPost(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.ReadTime != nil {
		post.ReadTime = *in.ReadTime
	}
	if in.FeaturedImage != nil {
		post.FeaturedImage = *in.FeaturedImage
	}
	if in.Slug != nil {
		if *in.Slug == "" {
			post.Slug = blog.Slugify(post.Title)
		} else {
			post.Slug = *in.Slug
		}
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrSlugTaken
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (s *ContentService) DeletePost(ctx context.Context, actor *blog.User, id int64) error {
	if _, err := s.ownedPost(ctx, actor, id); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Infow("Post deleted", "post_id", id, "author_id", actor.ID)
	return nil
}

// TransitionPostStatus moves a post through the lifecycle state
// machine. The publish time is stamped exactly once, on the first
// transition into published; later transitions never touch it.
func (s *ContentService) TransitionPostStatus(ctx context.Context, id int64, target blog.Status) (*blog.BlogPost, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	if !post.Status.CanTransition(target) {
		return nil, ErrInvalidTransition
	}

	var publishedAt *time.Time
	if target == blog.StatusPublished && post.PublishedAt == nil {
		now := time.Now()
		publishedAt = &now
	}

	if err := s.posts.UpdateStatus(ctx, id, target, publishedAt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to transition post status: %w", err)
	}

	post.Status = target
	if publishedAt != nil {
		post.PublishedAt = publishedAt
	}

	s.logger.Infow("Post status changed", "post_id", id, "status", target)
	return post, nil
}

func (s *ContentService) ownedPost(ctx context.Context, actor *blog.User, id int64) (*blog.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	if post.AuthorID != actor.ID {
		return nil, ErrForbidden
	}
	return post, nil
}

// Promotions mirror posts minus comments and reactions.

type CreatePromotionInput struct {
	Slogan  string
	Slug    string
	Content string
	Status  string
}

type UpdatePromotionInput struct {
	Slogan  *string
	Slug    *string
	Content *string
	Status  *string
}

func (s *ContentService) CreatePromotion(ctx context.Context, author *blog.User, in CreatePromotionInput) (*blog.Promotion, error) {
	status := blog.StatusDraft
	if in.Status != "" {
		status = blog.Status(in.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	slug := in.Slug
	if slug == "" {
		slug = blog.Slugify(in.Slogan)
	}

	promo := &blog.Promotion{
		AuthorID: author.ID,
		Slogan:   in.Slogan,
		Slug:     slug,
		Content:  in.Content,
		Status:   status,
	}

	if err := s.promos.Create(ctx, promo); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	s.logger.Infow("Promotion created", "promotion_id", promo.ID, "slug", promo.Slug)
	return promo, nil
}

func (s *ContentService) GetPublishedPromotion(ctx context.Context, slug string) (*blog.Promotion, error) {
	promo, err := s.promos.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch promotion: %w", err)
	}
	return promo, nil
}

func (s *ContentService) ListPublishedPromotions(ctx context.Context) ([]*blog.Promotion, error) {
	return s.promos.ListPublished(ctx)
}

func (s *ContentService) UpdatePromotion(ctx context.Context, actor *blog.User, id int64, in UpdatePromotionInput) (*blog.Promotion, error) {
	promo, err := s.ownedPromotion(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.Slogan != nil {
		promo.Slogan = *in.Slogan
	}
	if in.Content != nil {
		promo.Content = *in.Content
	}
	if in.Status != nil {
		status := blog.Status(*in.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if !promo.Status.CanTransition(status) {
			return nil, ErrInvalidTransition
		}
		promo.Status = status
	}
	if in.Slug != nil {
		if *in.Slug == "" {
			promo.Slug = blog.Slugify(promo.Slogan)
		} else {
			promo.Slug = *in.Slug
		}
	}

	if err := s.promos.Update(ctx, promo); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrSlugTaken
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}

	return promo, nil
}

func (s *ContentService) DeletePromotion(ctx context.Context, actor *blog.User, id int64) error {
	if _, err := s.ownedPromotion(ctx, actor, id); err != nil {
		return err
	}

	if err := s.promos.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete promotion: %w", err)
	}

	return nil
}

func (s *ContentService) ownedPromotion(ctx context.Context, actor *blog.User, id int64) (*blog.Promotion, error) {
	promo, err := s.promos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch promotion: %w", err)
	}
	if promo.AuthorID != actor.ID {
		return nil, ErrForbidden
	}
	return promo, nil
}
