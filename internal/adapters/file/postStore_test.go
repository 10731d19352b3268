package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	postEntity "blogpost/internal/core/post"
	postPort "blogpost/internal/ports/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostStoreFileLoad(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
		wantLen int
	}{
		{
			name: "valid collection",
			json: `[
				{"id": 1, "author": "A", "title": "T1", "content": "C1"},
				{"id": 2, "author": "B", "title": "T2", "content": "C2"}
			]`,
			wantLen: 2,
		},
		{
			name:    "empty collection",
			json:    `[]`,
			wantLen: 0,
		},
		{
			name:    "null fields decode as empty",
			json:    `[{"id": 1, "author": null, "title": null, "content": null}]`,
			wantLen: 1,
		},
		{
			name:    "null entries are skipped",
			json:    `[null, {"id": 3}]`,
			wantLen: 1,
		},
		{
			name:    "invalid json",
			json:    `{invalid json}`,
			wantErr: postPort.ErrStoreCorrupt,
		},
		{
			name:    "object instead of array",
			json:    `{"id": 1}`,
			wantErr: postPort.ErrStoreCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storePath := filepath.Join(t.TempDir(), "blog_posts.json")
			require.NoError(t, os.WriteFile(storePath, []byte(tt.json), 0600))

			store := NewPostStoreFile(storePath)
			posts, err := store.Load(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, posts, tt.wantLen)
		})
	}
}

func TestPostStoreFileLoadNonExistent(t *testing.T) {
	store := NewPostStoreFile(filepath.Join(t.TempDir(), "nonexistent.json"))

	posts, err := store.Load(context.Background())

	assert.ErrorIs(t, err, postPort.ErrStoreMissing)
	assert.Empty(t, posts)
}

func TestPostStoreFileLoadDirectory(t *testing.T) {
	store := NewPostStoreFile(t.TempDir())

	_, err := store.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, postPort.LoadFailed, postPort.ClassifyLoadError(err))
}

func TestPostStoreFileSave(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "blog_posts.json")
	store := NewPostStoreFile(storePath)

	posts := []*postEntity.Post{
		{ID: 1, Author: "A", Title: "T1", Content: "C1"},
	}
	require.NoError(t, store.Save(context.Background(), posts))

	data, err := os.ReadFile(storePath)
	require.NoError(t, err)
	want := "[\n" +
		"    {\n" +
		"        \"id\": 1,\n" +
		"        \"author\": \"A\",\n" +
		"        \"title\": \"T1\",\n" +
		"        \"content\": \"C1\"\n" +
		"    }\n" +
		"]"
	assert.Equal(t, want, string(data))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, posts, loaded)
}

func TestPostStoreFileSaveEmpty(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "blog_posts.json")
	store := NewPostStoreFile(storePath)

	require.NoError(t, store.Save(context.Background(), nil))

	data, err := os.ReadFile(storePath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestPostStoreFileSaveOverwrites(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "blog_posts.json")
	require.NoError(t, os.WriteFile(storePath, []byte(`{invalid`), 0600))
	store := NewPostStoreFile(storePath)

	require.NoError(t, store.Save(context.Background(), []*postEntity.Post{{ID: 2, Title: "T2"}}))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].ID)
}
