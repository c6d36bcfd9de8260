package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	rnd := rand.New(rand.NewSource(21))
	sess := NewSession("player", testPresets, rnd, NewOptionGenerator(rnd, DefaultChoices))
	sess.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	return sess
}

// playToEnd answers every remaining round correctly and advances.
func playToEnd(t *testing.T, sess *Session) {
	t.Helper()

	for !sess.Ended() {
		round, err := sess.Round()
		require.NoError(t, err)
		_, err = round.Select(round.Correct())
		require.NoError(t, err)
		_, err = round.Advance()
		require.NoError(t, err)
	}
}

func TestNewSession(t *testing.T) {
	sess := newTestSession(t)

	assert.True(t, sess.MenuOpen())
	assert.Equal(t, entities.SessionMenu, sess.State())
	assert.Empty(t, sess.ActivePresets())
	assert.Equal(t, "player", sess.PlayerName())
	assert.False(t, sess.Ready())
}

func TestSession_TogglePreset(t *testing.T) {
	sess := newTestSession(t)

	active, err := sess.TogglePreset("Islands")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, []string{"Islands"}, sess.ActivePresets())

	active, err = sess.TogglePreset("Islands")
	require.NoError(t, err)
	assert.False(t, active)
	assert.Empty(t, sess.ActivePresets())

	_, err = sess.TogglePreset("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestSession_RestorePresetsSkipsUnknown(t *testing.T) {
	sess := newTestSession(t)

	sess.RestorePresets([]string{"Starter", "Atlantis", "Europe"})

	assert.Equal(t, []string{"Europe", "Starter"}, sess.ActivePresets())
}

func TestSession_StartWithoutPresets(t *testing.T) {
	sess := newTestSession(t)

	err := sess.Start()

	assert.ErrorIs(t, err, ErrNoPresetsSelected)
	assert.True(t, sess.MenuOpen())
	assert.Equal(t, entities.SessionMenu, sess.State())
	assert.Empty(t, sess.Prompts())
}

func TestSession_Start(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.SetPreset("Europe", true))
	require.NoError(t, sess.SetPreset("Starter", true))

	require.NoError(t, sess.Start())

	assert.False(t, sess.MenuOpen())
	assert.Equal(t, entities.SessionPlaying, sess.State())
	assert.True(t, sess.Ready())
	assert.ElementsMatch(t, BuildPool(testPresets, map[string]bool{"Europe": true, "Starter": true}), sess.Prompts())

	round, err := sess.Round()
	require.NoError(t, err)
	assert.Equal(t, sess.Prompts()[0], round.Correct())
}

func TestSession_IslandsExample(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.SetPreset("Islands", true))
	require.NoError(t, sess.Start())

	assert.ElementsMatch(t, []string{"cu", "jp"}, sess.Prompts())

	for !sess.Ended() {
		round, err := sess.Round()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"cu", "jp"}, round.Options())
		_, err = round.Select(round.Correct())
		require.NoError(t, err)
		_, err = round.Advance()
		require.NoError(t, err)
	}
}

func TestSession_MenuBlocksRound(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.SetPreset("Islands", true))
	require.NoError(t, sess.Start())

	assert.True(t, sess.ToggleMenu())

	_, err := sess.Round()
	assert.ErrorIs(t, err, ErrMenuOpen)

	require.NoError(t, sess.Resume())
	_, err = sess.Round()
	assert.NoError(t, err)
}

func TestSession_ResumeWithoutGame(t *testing.T) {
	sess := newTestSession(t)

	assert.ErrorIs(t, sess.Resume(), ErrNoActiveGame)
	_, err := sess.Round()
	assert.ErrorIs(t, err, ErrNoActiveGame)
}

func TestSession_GameEnd(t *testing.T) {
	sess := newTestSession(t)
	sess.SetPlayerName("@flagfan")
	require.NoError(t, sess.SetPreset("Starter", true))
	require.NoError(t, sess.Start())

	playToEnd(t, sess)

	assert.Equal(t, 1, sess.endings)
	assert.True(t, sess.Ended())
	assert.True(t, sess.MenuOpen())

	result := sess.TakeResult()
	require.NotNil(t, result)
	assert.Equal(t, "player", result.PlayerKey)
	assert.Equal(t, "@flagfan", result.PlayerName)
	assert.Equal(t, []string{"Starter"}, result.Presets)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, 7, result.Correct)

	assert.Nil(t, sess.TakeResult(), "result is handed over once")

	view := sess.View(testName)
	require.NotNil(t, view.Result)
	assert.Nil(t, view.Round)
	assert.Equal(t, entities.SessionEnded, view.State)
}

func TestSession_RestartAfterEnd(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.SetPreset("Islands", true))
	require.NoError(t, sess.Start())
	playToEnd(t, sess)
	first := sess.View(testName).GameID

	require.NoError(t, sess.Start())

	view := sess.View(testName)
	assert.NotEqual(t, first, view.GameID)
	assert.Equal(t, entities.SessionPlaying, view.State)
	assert.Nil(t, view.Result)
	require.NotNil(t, view.Round)
	assert.Equal(t, 0, view.Round.Score)
}
