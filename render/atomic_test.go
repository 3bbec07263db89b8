package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests swap package-level file seams and therefore do not run in parallel.

// fakeTempFile is a controllable file-like object for WriteFileAtomic tests.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error { return f.closeErr }

// restoreSeams snapshots the file seams and restores them when t ends.
func restoreSeams(t *testing.T) {
	t.Helper()

	origCreate, origChmod, origRename, origRemove := createTempFile, chmodFile, renameFile, removeFile
	t.Cleanup(func() {
		createTempFile, chmodFile, renameFile, removeFile = origCreate, origChmod, origRename, origRemove
	})
}

// TestWriteFileAtomic_Success verifies content and permissions land at the target path.
func TestWriteFileAtomic_Success(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteFileAtomic(target, []byte("[[1]]\n"), 0o644))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "[[1]]\n", string(got))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

// TestWriteFileAtomic_Overwrites verifies an existing target is replaced.
func TestWriteFileAtomic_Overwrites(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(target, []byte("old\n"), 0o644))

	require.NoError(t, WriteFileAtomic(target, []byte("new\n"), 0o644))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

// TestWriteFileAtomic_MissingDir verifies a missing directory surfaces the create error.
func TestWriteFileAtomic_MissingDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nope", "out.txt")
	err := WriteFileAtomic(target, []byte("x"), 0o644)
	require.Error(t, err)
}

// TestWriteFileAtomic_WriteError verifies a write failure removes the temp file.
func TestWriteFileAtomic_WriteError(t *testing.T) {
	restoreSeams(t)

	boom := errors.New("write boom")
	var removed string
	createTempFile = func(string, string) (tempFile, error) {
		return &fakeTempFile{fileName: "tmp-1", writeErr: boom}, nil
	}
	removeFile = func(p string) error { removed = p; return nil }

	err := WriteFileAtomic("/x/out.txt", []byte("x"), 0o644)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "tmp-1", removed)
}

// TestWriteFileAtomic_CloseError verifies a close failure removes the temp file.
func TestWriteFileAtomic_CloseError(t *testing.T) {
	restoreSeams(t)

	boom := errors.New("close boom")
	var removed string
	createTempFile = func(string, string) (tempFile, error) {
		return &fakeTempFile{fileName: "tmp-2", closeErr: boom}, nil
	}
	removeFile = func(p string) error { removed = p; return nil }

	err := WriteFileAtomic("/x/out.txt", []byte("x"), 0o644)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "tmp-2", removed)
}

// TestWriteFileAtomic_ChmodAndRenameErrors verifies later failures also clean up.
func TestWriteFileAtomic_ChmodAndRenameErrors(t *testing.T) {
	restoreSeams(t)

	createTempFile = func(string, string) (tempFile, error) {
		return &fakeTempFile{fileName: "tmp-3"}, nil
	}
	var removed []string
	removeFile = func(p string) error { removed = append(removed, p); return nil }

	chmodBoom := errors.New("chmod boom")
	chmodFile = func(string, os.FileMode) error { return chmodBoom }
	assert.ErrorIs(t, WriteFileAtomic("/x/out.txt", nil, 0o644), chmodBoom)

	renameBoom := errors.New("rename boom")
	chmodFile = func(string, os.FileMode) error { return nil }
	renameFile = func(string, string) error { return renameBoom }
	assert.ErrorIs(t, WriteFileAtomic("/x/out.txt", nil, 0o644), renameBoom)

	assert.Equal(t, []string{"tmp-3", "tmp-3"}, removed)
}
