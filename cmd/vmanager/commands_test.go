package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/vmanager/internal/catalog"
	"github.com/vmunix/vmanager/internal/remote"
	"github.com/vmunix/vmanager/internal/videos"
)

func TestList(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "list", "--sort", "author")
	require.NoError(t, err)

	assert.Contains(t, out, "Videos (2 of 2)")
	assert.Contains(t, out, "Night Shift")
	assert.Contains(t, out, "one 1080p")
	assert.Contains(t, out, "09.08.2018")
	assert.Contains(t, out, "Comedy, Drama")
	assert.Less(t, strings.Index(out, "Night Shift"), strings.Index(out, "Álbum Blanco"))
}

func TestList_Desc(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "list", "--sort", "date", "--desc")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Álbum Blanco"), strings.Index(out, "Night Shift"))
}

func TestList_Search(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "list", "--search", "album")
	require.NoError(t, err)
	assert.Contains(t, out, "Álbum Blanco", "accents are ignored")
	assert.NotContains(t, out, "Night Shift")

	out, err = execute(t, storeURL, "", "list", "--search", "thriller")
	require.NoError(t, err)
	assert.Contains(t, out, "Night Shift", "categories are searched")
}

func TestList_FuzzySearch(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "list", "--search", "nigth", "--fuzzy")
	require.NoError(t, err)
	assert.Contains(t, out, "Night Shift")
}

func TestList_NoMatch(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "list", "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, `No videos match "zzz"`)
}

func TestList_JSON(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "--json", "list", "--sort", "author")
	require.NoError(t, err)

	var rows []catalog.ProcessedVideo
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, catalog.ProcessedVideo{
		ID:                   1,
		AuthorID:             1,
		Name:                 "Night Shift",
		Author:               "Jane Doe",
		HighestQualityFormat: "one 1080p",
		ReleaseDate:          "2018-08-09",
		Categories:           []string{"Thriller"},
	}, rows[0])
}

func TestList_JSONEmpty(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "--json", "list", "--search", "zzz")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestList_BadSort(t *testing.T) {
	_, err := execute(t, "http://127.0.0.1:1", "", "list", "--sort", "size")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort field")
}

func TestList_StoreError(t *testing.T) {
	srv := newMockServer(t).RespondError(http.StatusInternalServerError, "boom").Build()

	_, err := execute(t, srv.URL, "", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, remote.ErrFetchFailed)
}

func TestShow(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "show", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Video 1: Night Shift")
	assert.Contains(t, out, "Jane Doe (1)")
	assert.Contains(t, out, "Thriller")
	assert.Contains(t, out, "09.08.2018")
	assert.Contains(t, out, "720p")
}

func TestShow_JSON(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "--json", "show", "2", "2")
	require.NoError(t, err)

	var got videos.VideoWithAuthor
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Álbum Blanco", got.Video.Name)
	assert.Equal(t, "John Roe", got.Author.Name)
}

func TestShow_InvalidID(t *testing.T) {
	_, err := execute(t, "http://127.0.0.1:1", "", "show", "abc", "1")
	assert.ErrorIs(t, err, catalog.ErrInvalidIdentifier)
}

func TestShow_NotFound(t *testing.T) {
	storeURL, _ := newTestStore(t)

	_, err := execute(t, storeURL, "", "show", "1", "2")
	assert.ErrorIs(t, err, catalog.ErrNotFound, "video 2 belongs to author 2")

	_, err = execute(t, storeURL, "", "show", "9", "1")
	assert.ErrorIs(t, err, remote.ErrAuthorNotFound)
}

func TestShow_UsesExpectedPath(t *testing.T) {
	srv := newMockServer(t).
		ExpectGET().
		ExpectPath("/authors/4").
		RespondJSON(catalog.Author{ID: 4, Name: "Four", Videos: []catalog.Video{}}).
		Build()

	_, err := execute(t, srv.URL, "", "show", "4", "1")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestAdd(t *testing.T) {
	storeURL, store := newTestStore(t)

	out, err := execute(t, storeURL, "", "add", "--name", "Fresh", "--author", "3", "--category", "1,2", "--category", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `Added video 3 "Fresh" to author 3.`)

	author, err := store.GetAuthor(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, author.Videos, 1)
	assert.Equal(t, []int{1, 2, 3}, author.Videos[0].CatIDs)
	assert.Equal(t, "one 1080p", catalog.PickHighestQualityLabel(author.Videos[0].Formats))
}

func TestAdd_Validation(t *testing.T) {
	storeURL, _ := newTestStore(t)

	_, err := execute(t, storeURL, "", "add", "--name", "  ", "--author", "3", "--category", "1")
	assert.ErrorIs(t, err, videos.ErrInvalidDraft)

	_, err = execute(t, storeURL, "", "add", "--name", "X", "--author", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")

	_, err = execute(t, storeURL, "", "add", "--name", "X", "--author", "3", "--category", "one")
	assert.ErrorIs(t, err, catalog.ErrInvalidIdentifier)
}

func TestEdit_Rename(t *testing.T) {
	storeURL, store := newTestStore(t)

	out, err := execute(t, storeURL, "", "edit", "1", "1", "--name", "Day Shift")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated video 1.")

	author, err := store.GetAuthor(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, author.Videos, 1)
	assert.Equal(t, "Day Shift", author.Videos[0].Name)
	assert.Equal(t, []int{1}, author.Videos[0].CatIDs, "categories kept")
	assert.Equal(t, 2, author.Videos[0].Formats.Len(), "formats kept")
}

func TestEdit_Move(t *testing.T) {
	storeURL, store := newTestStore(t)

	out, err := execute(t, storeURL, "", "edit", "1", "1", "--author", "2", "--category", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved video 1 to author 2.")

	from, err := store.GetAuthor(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, from.Videos)

	to, err := store.GetAuthor(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, to.Videos, 2)
	assert.Equal(t, 1, to.Videos[1].ID)
	assert.Equal(t, []int{2}, to.Videos[1].CatIDs)
}

func TestDelete_Confirm(t *testing.T) {
	storeURL, store := newTestStore(t)

	out, err := execute(t, storeURL, "n\n", "delete", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	author, err := store.GetAuthor(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, author.Videos, 1, "declined delete keeps the video")

	out, err = execute(t, storeURL, "y\n", "delete", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted video 1.")

	author, err = store.GetAuthor(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, author.Videos)
}

func TestDelete_Yes(t *testing.T) {
	storeURL, store := newTestStore(t)

	_, err := execute(t, storeURL, "", "delete", "2", "2", "--yes")
	require.NoError(t, err)

	author, err := store.GetAuthor(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, author.Videos)
}

func TestAuthorsAndCategories(t *testing.T) {
	storeURL, _ := newTestStore(t)

	out, err := execute(t, storeURL, "", "authors")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Ana Silva")

	out, err = execute(t, storeURL, "", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Thriller")
	assert.Contains(t, out, "Drama")

	out, err = execute(t, storeURL, "", "--json", "categories")
	require.NoError(t, err)
	var categories []catalog.Category
	require.NoError(t, json.Unmarshal([]byte(out), &categories))
	assert.Len(t, categories, 3)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmanager", "config.toml")

	out, err := execute(t, "", "", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[store]")

	_, err = execute(t, "", "", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "", "", "init", path, "--force")
	require.NoError(t, err)
}

func TestConfigFile(t *testing.T) {
	storeURL, _ := newTestStore(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store]\nbase_url = \""+storeURL+"\"\n"), 0644))

	out, err := execute(t, "", "", "--config", path, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Thriller")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "", "version")
	require.NoError(t, err)
	assert.Equal(t, "vmanager dev\n", out)
}
