package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.PullRequest), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockPRService) ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).([]*github.CommitFile), responseArg(args.Get(1)), args.Error(2)
}

type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).([]*github.Label), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockIssuesService) CreateLabel(ctx context.Context, owner, repo string, label *github.Label) (*github.Label, *github.Response, error) {
	args := m.Called(ctx, owner, repo, label)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.Label), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockIssuesService) AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, labels)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).([]*github.Label), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockIssuesService) RemoveLabelForIssue(ctx context.Context, owner, repo string, number int, label string) (*github.Response, error) {
	args := m.Called(ctx, owner, repo, number, label)
	return responseArg(args.Get(0)), args.Error(1)
}

func responseArg(v interface{}) *github.Response {
	if v == nil {
		return nil
	}
	return v.(*github.Response)
}
