package distinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSplitNameVersion covers the name/version convention, including the
// known limitation for hyphenated package names.
func TestSplitNameVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dir     string
		name    string
		version string
		wantErr bool
	}{
		{dir: "mypkg-1.2.3.dist-info", name: "mypkg", version: "1.2.3"},
		{dir: "/opt/site-packages/mypkg-1.2.3.dist-info", name: "mypkg", version: "1.2.3"},
		// A hyphen in the version lands on the version side of the first split.
		{dir: "mypkg-1.0-rc1.dist-info", name: "mypkg", version: "1.0-rc1"},
		// Known limitation: a hyphenated package name splits at ITS first
		// hyphen, misattributing the rest to the version.
		{dir: "my-pkg-1.2.3.dist-info", name: "my", version: "pkg-1.2.3"},
		{dir: "nodash.dist-info", wantErr: true},
		{dir: "-1.2.3.dist-info", wantErr: true},
	}

	for _, tc := range cases {
		name, version, err := SplitNameVersion(tc.dir)
		if tc.wantErr {
			require.Error(t, err, tc.dir)
			continue
		}

		require.NoError(t, err, tc.dir)
		require.Equal(t, tc.name, name, tc.dir)
		require.Equal(t, tc.version, version, tc.dir)
	}
}

// TestEntryString verifies RECORD line rendering for hashed and sentinel entries.
func TestEntryString(t *testing.T) {
	t.Parallel()

	hashed := Entry{
		Path:   "mypkg/__init__.py",
		Digest: "47DEQpj8HBSa-_TImW-5JCeuQeRkm5NMpJWZG3hSuFU",
		Size:   0,
	}
	require.Equal(t, "mypkg/__init__.py,sha256=47DEQpj8HBSa-_TImW-5JCeuQeRkm5NMpJWZG3hSuFU,0", hashed.String())

	self := SelfEntry("mypkg-1.2.3.dist-info")
	require.Equal(t, "mypkg-1.2.3.dist-info/RECORD,,", self.String())
}

// TestMetadata checks the rendered METADATA header fields.
func TestMetadata(t *testing.T) {
	t.Parallel()

	got := Metadata("mypkg", "1.2.3")
	require.Equal(t, "Metadata-Version: 1.1\nName: mypkg\nVersion: 1.2.3\n", got)
}
