// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/timefmt"
)

// testCommand creates a command writing to the returned buffers.
func testCommand() (cmd *cobra.Command, out, errOut *bytes.Buffer) {
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}

	cmd = &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cfg = defaultSettings()
	cfg.Color = colorNever
	logger.SetOutput(errOut)

	return
}

func TestRunVersion(t *testing.T) {
	cmd, out, _ := testCommand()

	require.NoError(t, runVersion(cmd, []string{}))

	output := out.String()
	assert.Contains(t, output, "timefmt ")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "OS/Arch:")
}

func TestRunCheck(t *testing.T) {
	cmd, out, errOut := testCommand()

	require.NoError(t, runCheck(cmd, []string{"[year]-[month]", "[[x]]"}))
	assert.Equal(t, "ok   [year]-[month]\nok   [[x]]\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunCheck_Invalid(t *testing.T) {
	cmd, out, errOut := testCommand()

	err := runCheck(cmd, []string{"[day]", "[foo bar]", "[year"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDescriptions)
	assert.Contains(t, err.Error(), "2 of 3")

	assert.Equal(t, "ok   [day]\n", out.String())

	diagnostics := errOut.String()
	assert.Contains(t, diagnostics, "error: invalid modifier `bar` at byte index 5")
	assert.Contains(t, diagnostics, "1 | [foo bar]\n  |      ^^^ modifier must be of the form `key:value`\n")
	assert.Contains(t, diagnostics, "error: unclosed opening bracket at byte index 0")
	assert.Less(t, bytes.Index(errOut.Bytes(), []byte("[foo bar]")), bytes.Index(errOut.Bytes(), []byte("[year")))
}

func TestRunAST(t *testing.T) {
	t.Cleanup(func() { astOutput = "yaml" })

	cmd, out, _ := testCommand()
	astOutput = "yaml"
	require.NoError(t, runAST(cmd, []string{"[day padding:none]-[optional [[hour]]]"}))

	var nodes []astNode
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &nodes))
	require.Len(t, nodes, 3)
	assert.Equal(t, "component", nodes[0].Kind)
	assert.Equal(t, "day", nodes[0].Value)
	assert.Equal(t, []modifierNode{{Key: "padding", Value: "none", Span: "5..17"}}, nodes[0].Modifiers)
	assert.Equal(t, "literal", nodes[1].Kind)
	assert.Equal(t, "optional", nodes[2].Kind)
	require.Len(t, nodes[2].Items, 1)
	assert.Equal(t, "hour", nodes[2].Items[0].Value)

	cmd, out, _ = testCommand()
	astOutput = "json"
	require.NoError(t, runAST(cmd, []string{"[[x"}))

	nodes = nil
	require.NoError(t, json.Unmarshal(out.Bytes(), &nodes))
	require.Len(t, nodes, 2)
	assert.Equal(t, "escaped_bracket", nodes[0].Kind)
	assert.Equal(t, "0..2", nodes[0].Span)

	cmd, out, _ = testCommand()
	astOutput = "spew"
	require.NoError(t, runAST(cmd, []string{"[year]"}))
	assert.Contains(t, out.String(), "timefmt.Component")

	cmd, _, _ = testCommand()
	astOutput = "xml"
	assert.ErrorIs(t, runAST(cmd, []string{"[year]"}), ErrUnknownOutputFormat)
}

func TestRunAST_Invalid(t *testing.T) {
	cmd, _, errOut := testCommand()

	err := runAST(cmd, []string{"[]"})
	assert.ErrorIs(t, err, timefmt.ErrMissingComponentName)
	assert.Contains(t, errOut.String(), "1 | []\n  |  ^ expected component name\n")
}

func TestRunScan(t *testing.T) {
	t.Cleanup(func() { scanPrefix = false })

	cmd, out, _ := testCommand()
	require.NoError(t, runScan(cmd, []string{"[year]-[month repr:short]-[day]", "2024-Mar-09"}))
	assert.Equal(t, "day: 9\nmonth: 3\nyear: 2024\n", out.String())

	cmd, out, _ = testCommand()
	scanPrefix = true
	require.NoError(t, runScan(cmd, []string{"[hour]", "10:30"}))
	assert.Equal(t, "consumed: 2\nhour_24: 10\n", out.String())
}

func TestRunScan_Invalid(t *testing.T) {
	cmd, _, errOut := testCommand()

	require.Error(t, runScan(cmd, []string{"[year]-[month]", "2024/03"}))
	assert.Contains(t, errOut.String(), "error: invalid literal at byte index 4")
	assert.Contains(t, errOut.String(), "1 | 2024/03\n  |     ^\n")

	cmd, _, errOut = testCommand()
	require.Error(t, runScan(cmd, []string{"[foo]", "x"}))
	assert.Contains(t, errOut.String(), "invalid component name `foo`")
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "timefmt.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("debug: true\ncolor: never\nworkers: 3\n"), 0o600))

	s, err := loadSettings(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, settings{Debug: true, LogLevel: "info", Color: colorNever, Workers: 3}, s)

	tomlPath := filepath.Join(dir, "timefmt.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("log_level = \"warn\"\ncolor = \"always\"\n"), 0o600))

	s, err = loadSettings(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, settings{LogLevel: "warn", Color: colorAlways}, s)

	badColor := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(badColor, []byte("color: rainbow\n"), 0o600))
	_, err = loadSettings(badColor)
	assert.ErrorIs(t, err, ErrInvalidColorMode)

	unknown := filepath.Join(dir, "timefmt.ini")
	require.NoError(t, os.WriteFile(unknown, []byte("debug=true\n"), 0o600))
	_, err = loadSettings(unknown)
	assert.ErrorIs(t, err, ErrUnknownConfigFormat)

	_, err = loadSettings(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, colorEnabled(colorAlways, &buf))
	assert.False(t, colorEnabled(colorNever, &buf))
	assert.False(t, colorEnabled(colorAuto, &buf))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(colorAuto, os.Stdout))
}

func TestRenderError_Multiline(t *testing.T) {
	src := []byte("[year]\n[day")
	_, err := timefmt.Parse(src)
	require.Error(t, err)

	var buf bytes.Buffer
	newStyles(false).renderError(&buf, src, err)

	assert.Equal(t, "error: unclosed opening bracket at byte index 7\n"+
		" --> 2:1\n"+
		"  |\n"+
		"2 | [day\n"+
		"  | ^ unclosed bracket\n", buf.String())
}
