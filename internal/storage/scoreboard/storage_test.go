package scoreboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/timestamper/internal/host"
	"github.com/mcoot/timestamper/internal/model"
)

// recordingRunner captures commands and replays canned results
type recordingRunner struct {
	commands []string
	output   string
	err      error
}

func (r *recordingRunner) RunCommand(ctx context.Context, command string) (string, error) {
	r.commands = append(r.commands, command)
	return r.output, r.err
}

func TestCommandShapes(t *testing.T) {
	runner := &recordingRunner{}
	store := New(runner)
	ctx := context.Background()

	require.NoError(t, store.EnsureObjective(ctx, "js.dates"))
	require.NoError(t, store.SetEntry(ctx, "js.dates", "&..&>x>{}"))
	require.NoError(t, store.ResetEntry(ctx, "js.dates", "&..&>x>{}"))

	assert.Equal(t, []string{
		"scoreboard objectives add js.dates dummy",
		`scoreboard players set "&..&>x>{}" "js.dates" 0`,
		`scoreboard players reset "&..&>x>{}"`,
	}, runner.commands)
}

func TestHostFailuresMapToSentinels(t *testing.T) {
	runner := &recordingRunner{err: errors.New("rejected")}
	store := New(runner)
	ctx := context.Background()

	assert.ErrorIs(t, store.EnsureObjective(ctx, "js.dates"), model.ErrObjectiveExists)
	assert.ErrorIs(t, store.ResetEntry(ctx, "js.dates", "a"), model.ErrEntryNotFound)
	assert.Error(t, store.SetEntry(ctx, "js.dates", "a"))

	_, err := store.ListEntries(ctx, "js.dates")
	assert.Error(t, err)
}

func TestParseListing(t *testing.T) {
	entries, err := parseListing("Showing 3 tracked players on the scoreboard:\n a, b c,d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b c", "d"}, entries)
}

func TestParseListingSingleLine(t *testing.T) {
	_, err := parseListing("no second line")
	assert.ErrorIs(t, err, model.ErrMalformedListing)
}

func TestQuoteEscapes(t *testing.T) {
	assert.Equal(t, `"a\"b\\c"`, quote(`a"b\c`))
}

type WorldSuite struct {
	suite.Suite
	world *host.World
	store *Storage
	ctx   context.Context
}

func TestWorldSuite(t *testing.T) {
	suite.Run(t, new(WorldSuite))
}

func (s *WorldSuite) SetupTest() {
	s.world = host.NewWorld()
	s.store = New(s.world)
	s.ctx = context.Background()
}

func (s *WorldSuite) TestEnsureObjectiveTwice() {
	s.Require().NoError(s.store.EnsureObjective(s.ctx, "js.dates"))
	s.ErrorIs(s.store.EnsureObjective(s.ctx, "js.dates"), model.ErrObjectiveExists)
}

func (s *WorldSuite) TestSetAndList() {
	_ = s.store.EnsureObjective(s.ctx, "js.dates")
	s.Require().NoError(s.store.SetEntry(s.ctx, "js.dates", "&..&>daily>{&&^'value&&^':1}"))
	s.Require().NoError(s.store.SetEntry(s.ctx, "js.dates", "Steve"))

	entries, err := s.store.ListEntries(s.ctx, "js.dates")
	s.Require().NoError(err)
	s.Equal([]string{"&..&>daily>{&&^'value&&^':1}", "Steve"}, entries)
}

func (s *WorldSuite) TestListEmptyScoreboardFails() {
	_, err := s.store.ListEntries(s.ctx, "js.dates")
	s.Error(err)
}

func (s *WorldSuite) TestReset() {
	_ = s.store.EnsureObjective(s.ctx, "js.dates")
	_ = s.store.SetEntry(s.ctx, "js.dates", "a")
	_ = s.store.SetEntry(s.ctx, "js.dates", "b")

	s.Require().NoError(s.store.ResetEntry(s.ctx, "js.dates", "a"))
	s.ErrorIs(s.store.ResetEntry(s.ctx, "js.dates", "a"), model.ErrEntryNotFound)

	entries, err := s.store.ListEntries(s.ctx, "js.dates")
	s.Require().NoError(err)
	s.Equal([]string{"b"}, entries)
}

func (s *WorldSuite) TestSetWithoutObjectiveFails() {
	s.Error(s.store.SetEntry(s.ctx, "js.dates", "a"))
}
