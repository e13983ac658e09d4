package github

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-github/v80/github"
	domainerrors "github.com/monorepo-tools/monokit/internal/domain/errors"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, pr *MockPRService, issues *MockIssuesService) *GitHubClient {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewGitHubClientWithServices(pr, issues, "test-owner", "test-repo", trans)
}

func httpResponse(status int) *github.Response {
	return &github.Response{Response: &http.Response{StatusCode: status}}
}

func TestGitHubClient_GetPR(t *testing.T) {
	t.Run("should return labels and changed files", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		pr := &github.PullRequest{
			Title: github.Ptr("Move networking into kmp"),
			User:  &github.User{Login: github.Ptr("mona")},
			Base:  &github.PullRequestBranch{Ref: github.Ptr("main")},
			Labels: []*github.Label{
				{Name: github.Ptr("Android")},
			},
		}
		mockPR.On("Get", mock.Anything, "test-owner", "test-repo", 42).
			Return(pr, httpResponse(http.StatusOK), nil)

		mockPR.On("ListFiles", mock.Anything, "test-owner", "test-repo", 42, mock.Anything).
			Return([]*github.CommitFile{
				{Filename: github.Ptr("kmp/shared/src/Foo.kt")},
				{Filename: github.Ptr("docs/readme.md")},
			}, &github.Response{}, nil)

		prData, err := client.GetPR(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, 42, prData.Number)
		assert.Equal(t, "mona", prData.Author)
		assert.Equal(t, "main", prData.BaseBranch)
		assert.Equal(t, []string{"Android"}, prData.Labels)
		assert.Equal(t, []string{"kmp/shared/src/Foo.kt", "docs/readme.md"}, prData.ChangedFiles)
		mockPR.AssertExpectations(t)
	})

	t.Run("should paginate changed files", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "test-owner", "test-repo", 7).
			Return(&github.PullRequest{}, httpResponse(http.StatusOK), nil)

		mockPR.On("ListFiles", mock.Anything, "test-owner", "test-repo", 7, mock.MatchedBy(func(opts *github.ListOptions) bool {
			return opts.Page == 0
		})).Return([]*github.CommitFile{
			{Filename: github.Ptr("android/a.kt")},
		}, &github.Response{NextPage: 2}, nil).Once()

		mockPR.On("ListFiles", mock.Anything, "test-owner", "test-repo", 7, mock.MatchedBy(func(opts *github.ListOptions) bool {
			return opts.Page == 2
		})).Return([]*github.CommitFile{
			{Filename: github.Ptr("ios/b.swift")},
		}, &github.Response{}, nil).Once()

		prData, err := client.GetPR(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, []string{"android/a.kt", "ios/b.swift"}, prData.ChangedFiles)
		mockPR.AssertExpectations(t)
	})

	t.Run("should return PRNotFoundError on 404", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "test-owner", "test-repo", 999).
			Return(nil, httpResponse(http.StatusNotFound), errors.New("not found"))

		_, err := client.GetPR(context.Background(), 999)

		var notFound *domainerrors.PRNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 999, notFound.Number)
	})
}

func TestGitHubClient_AddLabels(t *testing.T) {
	t.Run("should add labels", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockIssues.On("AddLabelsToIssue", mock.Anything, "test-owner", "test-repo", 42, []string{"Android", "iOS"}).
			Return([]*github.Label{}, &github.Response{}, nil)

		err := client.AddLabels(context.Background(), 42, []string{"Android", "iOS"})

		assert.NoError(t, err)
		mockIssues.AssertExpectations(t)
	})

	t.Run("should skip the API call with no labels", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		err := client.AddLabels(context.Background(), 42, nil)

		assert.NoError(t, err)
		mockIssues.AssertNotCalled(t, "AddLabelsToIssue")
	})

	t.Run("should report insufficient permissions on 403", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockIssues.On("AddLabelsToIssue", mock.Anything, "test-owner", "test-repo", 42, []string{"Android"}).
			Return(nil, httpResponse(http.StatusForbidden), errors.New("forbidden"))

		err := client.AddLabels(context.Background(), 42, []string{"Android"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "test-owner/test-repo")
	})
}

func TestGitHubClient_RemoveLabel(t *testing.T) {
	t.Run("should remove the label", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockIssues.On("RemoveLabelForIssue", mock.Anything, "test-owner", "test-repo", 42, "Android").
			Return(&github.Response{}, nil)

		err := client.RemoveLabel(context.Background(), 42, "Android")

		assert.NoError(t, err)
		mockIssues.AssertExpectations(t)
	})

	t.Run("should treat 404 as already removed", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockIssues.On("RemoveLabelForIssue", mock.Anything, "test-owner", "test-repo", 42, "iOS").
			Return(httpResponse(http.StatusNotFound), errors.New("not found"))

		err := client.RemoveLabel(context.Background(), 42, "iOS")

		assert.NoError(t, err)
	})
}

func TestGitHubClient_EnsureLabelsExist(t *testing.T) {
	t.Run("should create missing labels with platform colors", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockIssues.On("ListLabels", mock.Anything, "test-owner", "test-repo", mock.Anything).
			Return([]*github.Label{
				{Name: github.Ptr("Android")},
			}, &github.Response{}, nil)

		mockIssues.On("CreateLabel", mock.Anything, "test-owner", "test-repo", mock.MatchedBy(func(label *github.Label) bool {
			return label.GetName() == "iOS" && label.GetColor() == "0E7AFE"
		})).Return(&github.Label{}, &github.Response{}, nil)

		err := client.EnsureLabelsExist(context.Background(), []string{"Android", "iOS"})

		assert.NoError(t, err)
		mockIssues.AssertNumberOfCalls(t, "CreateLabel", 1)
	})

	t.Run("should tolerate a concurrent create", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockIssues.On("ListLabels", mock.Anything, "test-owner", "test-repo", mock.Anything).
			Return([]*github.Label{}, &github.Response{}, nil)

		mockIssues.On("CreateLabel", mock.Anything, "test-owner", "test-repo", mock.Anything).
			Return(nil, httpResponse(http.StatusUnprocessableEntity), errors.New("already_exists"))

		err := client.EnsureLabelsExist(context.Background(), []string{"Android"})

		assert.NoError(t, err)
	})
}
