package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecords(t *testing.T) {
	out, err := execute(t, "records")
	require.NoError(t, err)

	var types map[string]int64
	require.NoError(t, json.Unmarshal([]byte(out), &types))
	assert.Len(t, types, 8)
	assert.Equal(t, int64(0), types["AnonymousIp"])
	assert.Equal(t, int64(7), types["Isp"])
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestLookupNotInstalled(t *testing.T) {
	root := t.TempDir()
	out, err := execute(t, "--root", root, "lookup", "8.8.8.8", "--type", "City")
	require.Error(t, err)

	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Contains(t, resp["error"], "You didn't install the MaxMindDB database!")
	assert.Contains(t, resp["error"], filepath.Join(root, "maxminddb.mmdb"))
}

func TestLookupUnknownType(t *testing.T) {
	out, err := execute(t, "--root", t.TempDir(), "lookup", "8.8.8.8", "--type", "Weather")
	require.Error(t, err)
	assert.Contains(t, out, "Unknown or invalid GeoIP record type: Weather")
}

func TestLookupInvalidAddressBeforeType(t *testing.T) {
	out, err := execute(t, "--root", t.TempDir(), "lookup", "not-an-ip", "--type", "Weather")
	require.Error(t, err)
	assert.Contains(t, out, "Invalid IP address")
	assert.NotContains(t, out, "record type")
}

func TestCountryInvalidAddress(t *testing.T) {
	out, err := execute(t, "--root", t.TempDir(), "country", "not-an-ip")
	require.Error(t, err)
	assert.Contains(t, out, "Invalid IP address")
}

func TestLookupRequiresAddress(t *testing.T) {
	_, err := execute(t, "lookup")
	assert.Error(t, err)
}
