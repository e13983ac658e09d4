package services

import (
	"context"

	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) GetPR(ctx context.Context, prNumber int) (models.PRData, error) {
	args := m.Called(ctx, prNumber)
	return args.Get(0).(models.PRData), args.Error(1)
}

func (m *MockVCSClient) AddLabels(ctx context.Context, prNumber int, labels []string) error {
	args := m.Called(ctx, prNumber, labels)
	return args.Error(0)
}

func (m *MockVCSClient) RemoveLabel(ctx context.Context, prNumber int, label string) error {
	args := m.Called(ctx, prNumber, label)
	return args.Error(0)
}

func (m *MockVCSClient) EnsureLabelsExist(ctx context.Context, labels []string) error {
	args := m.Called(ctx, labels)
	return args.Error(0)
}

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) ChangedFiles(baseRef string) ([]string, error) {
	args := m.Called(baseRef)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitService) CurrentBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitService) IsWorkTreeClean() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockGitService) RepoInfo() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockGitService) HasCommitsUnder(prefix string) (bool, error) {
	args := m.Called(prefix)
	return args.Bool(0), args.Error(1)
}

func (m *MockGitService) RemoteAdd(name, url string) error {
	args := m.Called(name, url)
	return args.Error(0)
}

func (m *MockGitService) RemoteRemove(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitService) Fetch(remote, branch string) error {
	args := m.Called(remote, branch)
	return args.Error(0)
}

func (m *MockGitService) SubtreeAdd(prefix, remote, branch string, squash bool) error {
	args := m.Called(prefix, remote, branch, squash)
	return args.Error(0)
}
