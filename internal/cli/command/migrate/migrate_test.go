package migrate

import (
	"context"
	"testing"

	cfg "github.com/monorepo-tools/monokit/internal/config"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func setupMigrateTest(t *testing.T) (*MockGitService, *i18n.Translations, *cfg.Config) {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return new(MockGitService), translations, &cfg.Config{Language: "en"}
}

func TestImportCommand(t *testing.T) {
	t.Run("dry-run only prints the commands", func(t *testing.T) {
		mockGit, translations, config := setupMigrateTest(t)

		cmd := NewMigrateCommandFactory(mockGit).CreateCommand(translations, config)

		err := cmd.Run(context.Background(), []string{
			"migrate", "import",
			"--repo", "git@github.com:acme/ios.git",
			"--prefix", "ios",
			"--dry-run",
		})

		assert.NoError(t, err)
		mockGit.AssertNotCalled(t, "RemoteAdd")
		mockGit.AssertNotCalled(t, "SubtreeAdd")
	})

	t.Run("requires repo and prefix", func(t *testing.T) {
		mockGit, translations, config := setupMigrateTest(t)

		cmd := NewMigrateCommandFactory(mockGit).CreateCommand(translations, config)

		err := cmd.Run(context.Background(), []string{"migrate", "import", "--repo", "x"})
		assert.Error(t, err)
	})
}

func TestVerifyCommand(t *testing.T) {
	t.Run("succeeds when history is present", func(t *testing.T) {
		mockGit, translations, config := setupMigrateTest(t)

		mockGit.On("HasCommitsUnder", "android").Return(true, nil)

		cmd := NewMigrateCommandFactory(mockGit).CreateCommand(translations, config)

		err := cmd.Run(context.Background(), []string{"migrate", "verify", "--prefix", "android"})

		assert.NoError(t, err)
		mockGit.AssertExpectations(t)
	})

	t.Run("fails when no history was imported", func(t *testing.T) {
		mockGit, translations, config := setupMigrateTest(t)

		mockGit.On("HasCommitsUnder", "ios").Return(false, nil)

		cmd := NewMigrateCommandFactory(mockGit).CreateCommand(translations, config)

		err := cmd.Run(context.Background(), []string{"migrate", "verify", "--prefix", "ios"})

		assert.Error(t, err)
	})
}
