package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/menubot/internal/model"
)

func testMessage(runID string) model.Message {
	return model.Message{
		Title:       "Today's menu",
		RunID:       runID,
		Source:      "campusdish",
		GeneratedAt: time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC),
		Sections: []model.Section{
			{Heading: "Meat entrées", Color: "danger"},
			{Heading: "Vegetarian entrées", Color: "good", Fields: []model.Field{
				{Label: "Marinara", Value: ":spaghetti: vegetarian; contains milk", Emphasized: true},
			}},
			{Heading: "Sides"},
		},
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestWriteProducesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.jsonl")
	out, err := New(path)
	require.NoError(t, err)
	for _, id := range []string{"run-1", "run-2"} {
		require.NoError(t, out.Write(context.Background(), testMessage(id)))
	}
	require.NoError(t, out.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 2)

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "run-2", rec.RunID)
	assert.Equal(t, "campusdish", rec.Source)
	assert.Equal(t, "Today's menu", rec.Payload.Text)
	require.Len(t, rec.Payload.Attachments, 3)
	assert.Equal(t, "Marinara", rec.Payload.Attachments[1].Fields[0].Title)
}

func TestWriteIsVisibleBeforeClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.jsonl")
	out, err := New(path)
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, out.Write(context.Background(), testMessage("run-1")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run-1", "expected record flushed after Write")
}

func TestAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

	out, err := New(path)
	require.NoError(t, err)
	require.NoError(t, out.Write(context.Background(), testMessage("run-1")))
	require.NoError(t, out.Close())

	assert.Len(t, readLines(t, path), 2)
}

func TestRotationTriggersAtMaxSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.jsonl")
	out, err := New(path, WithMaxSize(200))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, out.Write(context.Background(), testMessage("run")))
	}
	require.NoError(t, out.Close())

	assert.FileExists(t, path+".1")
	assert.FileExists(t, path+".2")
	assert.Len(t, readLines(t, path), 1)
}

func TestRotationCountsExistingSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 150)+"\n"), 0644))

	out, err := New(path, WithMaxSize(200))
	require.NoError(t, err)
	require.NoError(t, out.Write(context.Background(), testMessage("run")))
	require.NoError(t, out.Close())

	assert.FileExists(t, path+".1", "a reopened archive keeps counting toward the limit")
	assert.Len(t, readLines(t, path), 1)
}

func TestNoRotationByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.jsonl")
	out, err := New(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, out.Write(context.Background(), testMessage("run")))
	}
	require.NoError(t, out.Close())

	assert.NoFileExists(t, path+".1")
	assert.Len(t, readLines(t, path), 5)
}

func TestNewInvalidPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "menus.jsonl"))

	assert.Error(t, err)
}
