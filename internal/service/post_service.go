package service

import (
	"context"
	"math"

	"blogapp/internal/apperror"
	"blogapp/internal/models"
	"blogapp/internal/repository"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type PostInput struct {
	Title   string
	Content string
}

type PostService interface {
	ListPosts(ctx context.Context, params models.PostListParams) (*models.PostPage, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	CreatePost(ctx context.Context, authorID string, input PostInput) (*models.Post, error)
	AuthorizeOwner(ctx context.Context, userID, postID, forbiddenMsg string) error
	UpdatePost(ctx context.Context, userID, postID string, input PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, userID, postID string) error
}

type postService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
}

func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository) PostService {
	return &postService{
		postRepo: postRepo,
		likeRepo: likeRepo,
	}
}

// NormalizeListParams applies the default page and limit. Page is capped so
// the offset cannot overflow; a page that far out is simply empty.
func NormalizeListParams(params models.PostListParams) models.PostListParams {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = DefaultPageLimit
	}
	if params.Limit > MaxPageLimit {
		params.Limit = MaxPageLimit
	}
	if maxPage := math.MaxInt / params.Limit; params.Page > maxPage {
		params.Page = maxPage
	}
	return params
}

func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}

func (p *postService) ListPosts(ctx context.Context, params models.PostListParams) (*models.PostPage, error) {
	params = NormalizeListParams(params)

	posts, total, err := p.postRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	likes, err := p.likeRepo.GetByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	byPost := make(map[string][]models.Like, len(posts))
	for _, like := range likes {
		byPost[like.PostID] = append(byPost[like.PostID], like)
	}

	for i := range posts {
		if postLikes, ok := byPost[posts[i].ID]; ok {
			posts[i].Likes = postLikes
		} else {
			posts[i].Likes = []models.Like{}
		}
	}

	return &models.PostPage{
		Posts:      posts,
		Total:      total,
		Page:       params.Page,
		TotalPages: TotalPages(total, params.Limit),
	}, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	likes, err := p.likeRepo.GetByPostIDWithUsers(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Likes = likes

	return post, nil
}

func (p *postService) CreatePost(ctx context.Context, authorID string, input PostInput) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Title:    input.Title,
		Content:  input.Content,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return p.postRepo.GetByID(ctx, post.ID)
}

// AuthorizeOwner returns NotFound when the post is missing and Forbidden
// with forbiddenMsg when userID is not its author.
func (p *postService) AuthorizeOwner(ctx context.Context, userID, postID, forbiddenMsg string) error {
	authorID, err := p.postRepo.GetAuthorID(ctx, postID)
	if err != nil {
		return err
	}

	if authorID != userID {
		return apperror.Forbidden(forbiddenMsg)
	}

	return nil
}

func (p *postService) UpdatePost(ctx context.Context, userID, postID string, input PostInput) (*models.Post, error) {
	if err := p.AuthorizeOwner(ctx, userID, postID, apperror.MsgEditForbidden); err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:       postID,
		AuthorID: userID,
		Title:    input.Title,
		Content:  input.Content,
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) DeletePost(ctx context.Context, userID, postID string) error {
	if err := p.AuthorizeOwner(ctx, userID, postID, apperror.MsgDeleteForbidden); err != nil {
		return err
	}

	return p.postRepo.Delete(ctx, postID)
}
