package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/menubot/internal/model"
)

// mockOutput records calls for test assertions.
type mockOutput struct {
	msgs   []model.Message
	closed bool
	err    error // if set, Write and Close return this error
}

func (m *mockOutput) Write(_ context.Context, msg model.Message) error {
	m.msgs = append(m.msgs, msg)
	return m.err
}

func (m *mockOutput) Close() error {
	m.closed = true
	return m.err
}

func testMessage(runID string) model.Message {
	return model.Message{
		Title: "Today's menu",
		RunID: runID,
		Sections: []model.Section{
			{Heading: "Sides", Fields: []model.Field{{Label: "Steamed Rice", Value: ":rice: contains soy", Emphasized: true}}},
		},
	}
}

func TestFanOutDeliversToAll(t *testing.T) {
	a, b, c := &mockOutput{}, &mockOutput{}, &mockOutput{}
	m := New(a, b, c)

	require.NoError(t, m.Write(context.Background(), testMessage("run-1")))

	for i, out := range []*mockOutput{a, b, c} {
		require.Len(t, out.msgs, 1, "output %d", i)
		assert.Equal(t, "run-1", out.msgs[0].RunID, "output %d", i)
	}
}

func TestErrorDoesNotPreventDelivery(t *testing.T) {
	diskFull := errors.New("disk full")
	failing := &mockOutput{err: diskFull}
	healthy := &mockOutput{}
	m := New(failing, healthy)

	err := m.Write(context.Background(), testMessage("run-1"))

	assert.ErrorIs(t, err, diskFull)
	// Healthy output still received the message despite earlier failure.
	assert.Len(t, healthy.msgs, 1)
	assert.Len(t, failing.msgs, 1)
}

func TestCloseCallsAllOutputs(t *testing.T) {
	a, b := &mockOutput{}, &mockOutput{}

	require.NoError(t, New(a, b).Close())

	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestCloseCollectsErrors(t *testing.T) {
	errA, errB := errors.New("err-a"), errors.New("err-b")
	a, b := &mockOutput{err: errA}, &mockOutput{err: errB}

	err := New(a, b).Close()

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.True(t, a.closed && b.closed, "Close should reach every output even when errors occur")
}

func TestNoOutputs(t *testing.T) {
	m := New()

	assert.NoError(t, m.Write(context.Background(), testMessage("run-1")))
	assert.NoError(t, m.Close())
}
