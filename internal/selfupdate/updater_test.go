package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linuxAsset = "watcrack_Linux_x86_64.tar.gz"

// fakeRelease serves a GitHub release of watcrack with the given archives
// and a checksums.txt covering them.
type fakeRelease struct {
	tag       string
	archives  map[string][]byte
	checksums string
	requests  []string
}

func newFakeRelease(tag string, archives map[string][]byte) *fakeRelease {
	var sums strings.Builder
	for name, data := range archives {
		h := sha256.Sum256(data)
		fmt.Fprintf(&sums, "%s  %s\n", hex.EncodeToString(h[:]), name)
	}
	return &fakeRelease{tag: tag, archives: archives, checksums: sums.String()}
}

func (f *fakeRelease) serve(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r.URL.Path)
		switch r.URL.Path {
		case "/repos/abhisek/watcrack/releases/latest", "/repos/abhisek/watcrack/releases/tags/" + f.tag:
			var rel release
			rel.TagName = f.tag
			rel.HTMLURL = "https://github.com/abhisek/watcrack/releases/tag/" + f.tag
			for name, data := range f.archives {
				rel.Assets = append(rel.Assets, releaseAsset{Name: name, Size: int64(len(data)), URL: srv.URL + "/dl/" + name})
			}
			rel.Assets = append(rel.Assets, releaseAsset{Name: checksumsAsset, URL: srv.URL + "/dl/" + checksumsAsset})
			_ = json.NewEncoder(w).Encode(rel)
		case "/dl/" + checksumsAsset:
			_, _ = w.Write([]byte(f.checksums))
		default:
			name := strings.TrimPrefix(r.URL.Path, "/dl/")
			if data, ok := f.archives[name]; ok {
				_, _ = w.Write(data)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// installedBinary writes an "old" watcrack into a temp dir.
func installedBinary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watcrack")
	require.NoError(t, os.WriteFile(path, []byte("watcrack v0.3.0"), 0o755))
	return path
}

func linuxChecker(srv *httptest.Server, execPath string) *Checker {
	return NewChecker(
		WithBaseURL(srv.URL),
		withExecPath(func() (string, error) { return execPath, nil }),
		withPlatform("linux", "amd64"),
	)
}

func TestUpdate_InstallsLatestRelease(t *testing.T) {
	archive := buildTarGz(t, map[string]string{
		"watcrack_0.4.0_Linux_x86_64/README.md": "# watcrack",
		"watcrack_0.4.0_Linux_x86_64/watcrack":  "watcrack v0.4.0",
	})
	rel := newFakeRelease("v0.4.0", map[string][]byte{
		linuxAsset:                    archive,
		"watcrack_Darwin_all.tar.gz":  []byte("darwin"),
		"watcrack_Windows_x86_64.zip": []byte("windows"),
	})
	srv := rel.serve(t)
	execPath := installedBinary(t)

	var stages []Stage
	res, err := linuxChecker(srv, execPath).Update(context.Background(), &UpdateInput{CurrentVersion: "0.3.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	assert.Equal(t, []Stage{StageCheck, StageDownload, StageVerify, StageExtract, StageInstall, StageDone}, stages)
	assert.Equal(t, "v0.4.0", res.To)
	assert.Equal(t, execPath+".old", res.Backup)

	got, err := os.ReadFile(execPath)
	require.NoError(t, err)
	assert.Equal(t, "watcrack v0.4.0", string(got))

	old, err := os.ReadFile(res.Backup)
	require.NoError(t, err)
	assert.Equal(t, "watcrack v0.3.0", string(old))

	info, err := os.Stat(execPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(execPath))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "staged download and temp binary should be cleaned up")
	assert.NotContains(t, rel.requests, "/dl/watcrack_Darwin_all.tar.gz")
}

func TestUpdate_PinnedVersion(t *testing.T) {
	rel := newFakeRelease("v0.3.2", map[string][]byte{
		linuxAsset: buildTarGz(t, map[string]string{"watcrack": "watcrack v0.3.2"}),
	})
	srv := rel.serve(t)
	execPath := installedBinary(t)

	// A pinned tag may be older than the running build.
	res, err := linuxChecker(srv, execPath).Update(context.Background(), &UpdateInput{CurrentVersion: "v0.4.0", TargetVersion: "0.3.2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "v0.3.2", res.To)
	assert.Contains(t, rel.requests, "/repos/abhisek/watcrack/releases/tags/v0.3.2")
}

func TestUpdate_AlreadyLatest(t *testing.T) {
	srv := newFakeRelease("v0.4.0", nil).serve(t)
	execPath := installedBinary(t)
	checker := linuxChecker(srv, execPath)

	_, err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v0.4.0"}, nil)
	assert.ErrorIs(t, err, ErrAlreadyLatest)

	_, err = checker.Update(context.Background(), &UpdateInput{CurrentVersion: "0.4.0", TargetVersion: "v0.4.0"}, nil)
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdate_DevBuild(t *testing.T) {
	for _, v := range []string{"", "(devel)"} {
		_, err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: v}, nil)
		assert.ErrorIs(t, err, ErrDevBuild, "version %q", v)
	}
}

func TestUpdate_ChecksumMismatchLeavesBinary(t *testing.T) {
	rel := newFakeRelease("v0.4.0", map[string][]byte{
		linuxAsset: buildTarGz(t, map[string]string{"watcrack": "watcrack v0.4.0"}),
	})
	rel.checksums = strings.Repeat("0", 64) + "  " + linuxAsset + "\n"
	srv := rel.serve(t)
	execPath := installedBinary(t)

	_, err := linuxChecker(srv, execPath).Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, nil)
	require.ErrorIs(t, err, ErrChecksum)

	got, err := os.ReadFile(execPath)
	require.NoError(t, err)
	assert.Equal(t, "watcrack v0.3.0", string(got))
	entries, err := os.ReadDir(filepath.Dir(execPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdate_MissingPlatformArchive(t *testing.T) {
	srv := newFakeRelease("v0.4.0", map[string][]byte{linuxAsset: []byte("x")}).serve(t)
	checker := NewChecker(
		WithBaseURL(srv.URL),
		withExecPath(func() (string, error) { return installedBinary(t), nil }),
		withPlatform("windows", "arm64"),
	)

	_, err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, nil)
	require.ErrorIs(t, err, ErrNoAsset)
	assert.Contains(t, err.Error(), "watcrack_Windows_arm64.zip")
}

func TestUpdate_ArchiveWithoutBinary(t *testing.T) {
	srv := newFakeRelease("v0.4.0", map[string][]byte{
		linuxAsset: buildTarGz(t, map[string]string{"LICENSE": "MIT"}),
	}).serve(t)
	execPath := installedBinary(t)

	_, err := linuxChecker(srv, execPath).Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in archive")
}

func TestUpdate_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated rights on windows")
	}
	srv := newFakeRelease("v0.4.0", map[string][]byte{
		linuxAsset: buildTarGz(t, map[string]string{"watcrack": "watcrack v0.4.0"}),
	}).serve(t)
	real := installedBinary(t)
	link := filepath.Join(t.TempDir(), "watcrack")
	require.NoError(t, os.Symlink(real, link))

	res, err := linuxChecker(srv, link).Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, nil)
	require.NoError(t, err)

	wantPath, err := filepath.EvalSymlinks(real)
	require.NoError(t, err)
	assert.Equal(t, wantPath, res.Path)
	got, err := os.ReadFile(link)
	require.NoError(t, err)
	assert.Equal(t, "watcrack v0.4.0", string(got))
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos, goarch, want string
		wantErr            bool
	}{
		{"darwin", "arm64", "watcrack_Darwin_all.tar.gz", false},
		{"linux", "amd64", "watcrack_Linux_x86_64.tar.gz", false},
		{"linux", "386", "watcrack_Linux_i386.tar.gz", false},
		{"windows", "arm64", "watcrack_Windows_arm64.zip", false},
		{"linux", "riscv64", "", true},
		{"freebsd", "amd64", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "ABC123  watcrack_Darwin_all.tar.gz\n" +
		"def456 *watcrack_Windows_x86_64.zip\n" +
		"\n" +
		"not a checksum line at all\n"
	assert.Equal(t, map[string]string{
		"watcrack_Darwin_all.tar.gz":  "abc123",
		"watcrack_Windows_x86_64.zip": "def456",
	}, parseChecksums([]byte(input)))
}

func TestExtractBinaryZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("watcrack_0.4.0_Windows_x86_64/watcrack.exe")
	require.NoError(t, err)
	_, err = w.Write([]byte("MZ"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "watcrack_Windows_x86_64.zip")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := extractBinary(path, "watcrack_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, []byte("MZ"), got)
}

// buildTarGz creates a tar.gz archive of the given files.
func buildTarGz(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Size:     int64(len(content)),
			Mode:     0o755,
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
