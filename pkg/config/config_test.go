package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"niri-app-hotkey/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(logger.WithConsole(), logger.WithLevel(zerolog.Disabled))
	require.NoError(t, err)
	return log
}

const validDocument = `
notify-command "dunstify"
application "discord" {
    spawn "discord" "--start-minimized"
    match app-id="discord"
    match title="^Discord"
    exclude title="Updater"
}
application "term" {
    spawn-sh "GDK_BACKEND=wayland kitty"
    match app-id="^kitty$" index=0
}
`

// Repeated nodes at both levels (two applications, two match rules on one
// application) and property-carrying rules must all decode.
func TestParseValidDocument(t *testing.T) {
	cfg, err := Parse([]byte(validDocument), testLogger(t))
	require.NoError(t, err)
	require.Len(t, cfg.Applications(), 2)

	discord, err := cfg.FindApplication("discord")
	require.NoError(t, err)
	require.Equal(t, []string{"discord", "--start-minimized"}, discord.Spawn)
	require.Empty(t, discord.SpawnSh)
	require.Len(t, discord.Matches, 2)
	require.Len(t, discord.Excludes, 1)
	require.True(t, discord.Matches[0].AppID.MatchString("discord"))
	require.True(t, discord.Matches[1].Title.MatchString("Discord - general"))
	require.Nil(t, discord.IndexRule())

	term, err := cfg.FindApplication("term")
	require.NoError(t, err)
	require.Equal(t, "GDK_BACKEND=wayland kitty", term.SpawnSh)
	require.NotNil(t, term.IndexRule())
	require.Equal(t, 0, *term.IndexRule().Index)
}

func TestParseNotifyCommand(t *testing.T) {
	cfg, err := Parse([]byte(validDocument), testLogger(t))
	require.NoError(t, err)
	require.Equal(t, "dunstify", cfg.NotifyCommand())
}

func TestParseNotifyCommandAbsentDefaultsToEmpty(t *testing.T) {
	document := `
application "term" {
    spawn "kitty"
    match app-id="^kitty$"
}
`
	cfg, err := Parse([]byte(document), testLogger(t))
	require.NoError(t, err)
	require.Empty(t, cfg.NotifyCommand())
}

func TestFindApplicationIsCaseSensitive(t *testing.T) {
	cfg, err := Parse([]byte(validDocument), testLogger(t))
	require.NoError(t, err)

	_, err = cfg.FindApplication("Discord")
	require.Error(t, err)
}

func TestParseRejectsBothSpawnAndSpawnSh(t *testing.T) {
	document := `
application "x" {
    spawn "x"
    spawn-sh "x"
    match app-id="x"
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mutually exclusive")
}

func TestParseRejectsNeitherSpawnNorSpawnSh(t *testing.T) {
	document := `
application "x" {
    match app-id="x"
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "either spawn or spawn-sh is required")
}

func TestParseRejectsEmptySpawn(t *testing.T) {
	document := `
application "x" {
    spawn
    match app-id="x"
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
}

func TestParseRejectsRuleWithoutPatterns(t *testing.T) {
	document := `
application "x" {
    spawn "x"
    match index=0
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least one of app-id or title")
}

func TestParseRejectsMissingMatchRules(t *testing.T) {
	document := `
application "x" {
    spawn "x"
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least one match rule")
}

func TestParseRejectsInvalidRegex(t *testing.T) {
	document := `
application "x" {
    spawn "x"
    match app-id="["
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid app-id pattern")
}

func TestParseRejectsDuplicateNames(t *testing.T) {
	document := `
application "x" {
    spawn "x"
    match app-id="x"
}
application "x" {
    spawn "y"
    match app-id="y"
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate name")
}

func TestParseRejectsMultipleIndexRules(t *testing.T) {
	document := `
application "x" {
    spawn "x"
    match app-id="x" index=0
    match title="x" index=1
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "at most one match rule may carry an index")
}

func TestParseRejectsIndexOnExcludeRule(t *testing.T) {
	document := `
application "x" {
    spawn "x"
    match app-id="x"
    exclude title="x" index=0
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "index is only valid on match rules")
}

func TestParseCollectsAllFindings(t *testing.T) {
	document := `
application "" {
    match app-id="["
}
application "y" {
    spawn "y"
}
`
	_, err := Parse([]byte(document), testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "name must not be empty")
	require.Contains(t, err.Error(), "either spawn or spawn-sh is required")
	require.Contains(t, err.Error(), "invalid app-id pattern")
}
