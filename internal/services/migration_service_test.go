package services

import (
	"context"
	"errors"
	"os"
	"testing"

	domainerrors "github.com/monorepo-tools/monokit/internal/domain/errors"
	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		_ = os.Chdir(originalDir)
	})
}

func TestMigrationService_Import(t *testing.T) {
	spec := models.MigrationSpec{
		RepoURL: "git@github.com:acme/android.git",
		Prefix:  "android",
		Branch:  "main",
	}

	t.Run("dry run prints commands without touching git", func(t *testing.T) {
		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		result, err := service.Import(context.Background(), spec, true)

		require.NoError(t, err)
		assert.True(t, result.DryRun)
		assert.Equal(t, "android-src", result.Remote)
		assert.Equal(t, []string{
			"git remote add android-src git@github.com:acme/android.git",
			"git fetch android-src main",
			"git subtree add --prefix=android android-src main",
		}, result.Commands)
		mockGit.AssertNotCalled(t, "RemoteAdd")
		mockGit.AssertNotCalled(t, "SubtreeAdd")
	})

	t.Run("squash adds the flag", func(t *testing.T) {
		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		squashed := spec
		squashed.Squash = true
		result, err := service.Import(context.Background(), squashed, true)

		require.NoError(t, err)
		assert.Contains(t, result.Commands[2], "--squash")
	})

	t.Run("imports through remote add, fetch and subtree add", func(t *testing.T) {
		chdirTemp(t)
		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		mockGit.On("IsWorkTreeClean").Return(true, nil)
		mockGit.On("RemoteAdd", "android-src", spec.RepoURL).Return(nil)
		mockGit.On("Fetch", "android-src", "main").Return(nil)
		mockGit.On("SubtreeAdd", "android", "android-src", "main", false).Return(nil)

		result, err := service.Import(context.Background(), spec, false)

		require.NoError(t, err)
		assert.False(t, result.DryRun)
		mockGit.AssertExpectations(t)
	})

	t.Run("defaults the branch to main", func(t *testing.T) {
		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		noBranch := spec
		noBranch.Branch = ""
		result, err := service.Import(context.Background(), noBranch, true)

		require.NoError(t, err)
		assert.Contains(t, result.Commands[1], "main")
	})

	t.Run("refuses when the prefix directory exists", func(t *testing.T) {
		chdirTemp(t)
		require.NoError(t, os.Mkdir("android", 0755))

		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		_, err := service.Import(context.Background(), spec, false)

		var migErr *domainerrors.MigrationError
		require.ErrorAs(t, err, &migErr)
		mockGit.AssertNotCalled(t, "RemoteAdd")
	})

	t.Run("refuses on a dirty work tree", func(t *testing.T) {
		chdirTemp(t)
		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		mockGit.On("IsWorkTreeClean").Return(false, nil)

		_, err := service.Import(context.Background(), spec, false)

		assert.Error(t, err)
		mockGit.AssertNotCalled(t, "RemoteAdd")
	})

	t.Run("removes the remote when the fetch fails", func(t *testing.T) {
		chdirTemp(t)
		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		mockGit.On("IsWorkTreeClean").Return(true, nil)
		mockGit.On("RemoteAdd", "android-src", spec.RepoURL).Return(nil)
		mockGit.On("Fetch", "android-src", "main").Return(errors.New("no such branch"))
		mockGit.On("RemoteRemove", "android-src").Return(nil)

		_, err := service.Import(context.Background(), spec, false)

		var migErr *domainerrors.MigrationError
		require.ErrorAs(t, err, &migErr)
		mockGit.AssertCalled(t, "RemoteRemove", "android-src")
		mockGit.AssertNotCalled(t, "SubtreeAdd")
	})

	t.Run("rejects invalid prefixes", func(t *testing.T) {
		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		_, err := service.Import(context.Background(), models.MigrationSpec{RepoURL: "x", Prefix: ""}, false)
		assert.Error(t, err)

		_, err = service.Import(context.Background(), models.MigrationSpec{RepoURL: "x", Prefix: "../etc"}, false)
		assert.Error(t, err)
	})
}

func TestMigrationService_Verify(t *testing.T) {
	t.Run("history present", func(t *testing.T) {
		mockGit := &MockGitService{}
		service := NewMigrationService(mockGit)

		mockGit.On("HasCommitsUnder", "android").Return(true, nil)

		ok, err := service.Verify("android/")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("empty prefix", func(t *testing.T) {
		service := NewMigrationService(&MockGitService{})
		_, err := service.Verify("/")
		assert.Error(t, err)
	})
}
