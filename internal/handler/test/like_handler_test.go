package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogapp/internal/apperror"
	"blogapp/internal/models"
)

func TestAddLikeHandler(t *testing.T) {
	vars := map[string]string{"id": "post-1"}

	tests := []struct {
		name           string
		userID         string
		mockSetup      func(*MockLikeService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:   "first like",
			userID: "user-1",
			mockSetup: func(like *MockLikeService) {
				like.On("AddLike", mock.Anything, "user-1", "post-1").
					Return(&models.Like{ID: "like-1", UserID: "user-1", PostID: "post-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "認証が必要です",
		},
		{
			name:   "already liked",
			userID: "user-1",
			mockSetup: func(like *MockLikeService) {
				like.On("AddLike", mock.Anything, "user-1", "post-1").
					Return(nil, apperror.Validation(apperror.MsgAlreadyLiked))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "既にいいねしています",
		},
		{
			name:   "missing post",
			userID: "user-1",
			mockSetup: func(like *MockLikeService) {
				like.On("AddLike", mock.Anything, "user-1", "post-1").
					Return(nil, apperror.NotFound(apperror.MsgPostNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "記事が見つかりません",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandlers()
			if tt.mockSetup != nil {
				tt.mockSetup(m.like)
			}

			rr := httptest.NewRecorder()
			h.AddLike(rr, newRequest(t, http.MethodPost, "/api/posts/post-1/like", nil, vars, tt.userID))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
			m.like.AssertExpectations(t)
		})
	}
}

func TestRemoveLikeHandler(t *testing.T) {
	vars := map[string]string{"id": "post-1"}

	t.Run("removed", func(t *testing.T) {
		h, m := newTestHandlers()
		m.like.On("RemoveLike", mock.Anything, "user-1", "post-1").Return(nil)

		rr := httptest.NewRecorder()
		h.RemoveLike(rr, newRequest(t, http.MethodDelete, "/api/posts/post-1/like", nil, vars, "user-1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"いいねを削除しました"}`, rr.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, m := newTestHandlers()

		rr := httptest.NewRecorder()
		h.RemoveLike(rr, newRequest(t, http.MethodDelete, "/api/posts/post-1/like", nil, vars, ""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		m.like.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
	})
}
