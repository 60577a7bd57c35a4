package vault

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var changelogHeader = regexp.MustCompile(`^## \[(\d+)\.(\d+)\.(\d+)\] - (\d{4}-\d{2}-\d{2})$`)

// The changelog follows the Keep a Changelog convention: semver version
// headers with well-formed dates, sorted newest-first, with the newest entry
// matching the Version constant.
func TestChangelogFormat(t *testing.T) {
	data, err := os.ReadFile("../CHANGELOG.md")
	require.NoError(t, err)

	type release struct {
		version [3]int
		date    time.Time
	}
	var releases []release
	var versions []string

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "## ") {
			continue
		}

		m := changelogHeader.FindStringSubmatch(line)
		require.NotNil(t, m, "malformed version header: %q", line)

		var version [3]int
		for i := 0; i < 3; i++ {
			version[i], err = strconv.Atoi(m[i+1])
			require.NoError(t, err)
		}

		date, err := time.Parse("2006-01-02", m[4])
		require.NoError(t, err, "malformed date in header: %q", line)

		releases = append(releases, release{version: version, date: date})
		versions = append(versions, m[1]+"."+m[2]+"."+m[3])
	}

	require.NotEmpty(t, releases)
	require.Equal(t, Version, versions[0], "Version constant must match the newest changelog entry")

	for i := 1; i < len(releases); i++ {
		prev, cur := releases[i-1], releases[i]
		require.False(t, cur.date.After(prev.date),
			"entries must be sorted newest-first: %s is dated after %s", versions[i], versions[i-1])

		require.True(t, cur.version[0] < prev.version[0] ||
			(cur.version[0] == prev.version[0] && cur.version[1] < prev.version[1]) ||
			(cur.version[0] == prev.version[0] && cur.version[1] == prev.version[1] && cur.version[2] < prev.version[2]),
			"versions must be strictly descending: %s before %s", versions[i-1], versions[i])
	}
}
