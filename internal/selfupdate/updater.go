package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// binaryName is the executable inside release archives.
const binaryName = "watcrack"

const (
	checksumsAsset = "checksums.txt"
	maxArchiveSize = 64 << 20
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
	ErrNoAsset       = errors.New("release has no archive for this platform")
)

// Stage names one step of Update.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageInstall  Stage = "install"
	StageDone     Stage = "done"
)

// UpdateInput selects the version to install. An empty TargetVersion means
// the latest release.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported as Update enters each Stage.
type UpdateProgress struct {
	Stage   Stage
	Message string
}

// UpdateResult describes a completed install.
type UpdateResult struct {
	From   string
	To     string
	Path   string
	Backup string
}

// Update installs a release over the running binary. The archive is
// streamed next to the binary, checked against the release's checksums.txt
// and swapped in with the previous binary kept as Backup.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) (*UpdateResult, error) {
	if input.CurrentVersion == "" || input.CurrentVersion == "(devel)" {
		return nil, ErrDevBuild
	}
	report := func(stage Stage, format string, args ...any) {
		if progress != nil {
			progress(UpdateProgress{Stage: stage, Message: fmt.Sprintf(format, args...)})
		}
	}

	tag := ""
	if input.TargetVersion != "" {
		tag = canonical(input.TargetVersion)
		report(StageCheck, "Looking up watcrack %s...", tag)
	} else {
		report(StageCheck, "Checking for the latest release...")
	}
	rel, err := c.fetchRelease(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("check for updates: %w", err)
	}
	if tag == "" && !newer(rel.TagName, input.CurrentVersion) {
		return nil, ErrAlreadyLatest
	}
	if tag != "" && canonical(rel.TagName) == canonical(input.CurrentVersion) {
		return nil, ErrAlreadyLatest
	}

	name, err := assetNameFor(c.goos, c.goarch)
	if err != nil {
		return nil, err
	}
	archive, ok := rel.asset(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s not in %s", ErrNoAsset, name, rel.TagName)
	}
	sums, ok := rel.asset(checksumsAsset)
	if !ok {
		return nil, fmt.Errorf("release %s publishes no %s", rel.TagName, checksumsAsset)
	}

	target, err := c.execPath()
	if err != nil {
		return nil, fmt.Errorf("resolve executable path: %w", err)
	}
	// Package managers install watcrack behind a symlink; replace the file it points at.
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	report(StageDownload, "Downloading %s (%.1f MB)...", name, float64(archive.Size)/(1<<20))
	staged, sum, err := c.download(ctx, archive.URL, filepath.Dir(target))
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}
	defer func() { _ = os.Remove(staged) }()

	report(StageVerify, "Verifying checksum...")
	want, err := c.expectedChecksum(ctx, sums.URL, name)
	if err != nil {
		return nil, err
	}
	if sum != want {
		return nil, fmt.Errorf("%w: %s is %s, checksums.txt says %s", ErrChecksum, name, sum, want)
	}

	report(StageExtract, "Extracting %s...", binaryName)
	bin, err := extractBinary(staged, name)
	if err != nil {
		return nil, fmt.Errorf("extract binary: %w", err)
	}

	report(StageInstall, "Installing to %s...", target)
	backup, err := install(bin, target)
	if err != nil {
		return nil, fmt.Errorf("install: %w", err)
	}

	c.logger.Info("updated",
		zap.String("from", input.CurrentVersion),
		zap.String("to", rel.TagName),
		zap.String("path", target),
		zap.String("backup", backup))
	report(StageDone, "Updated to %s", rel.TagName)

	return &UpdateResult{From: input.CurrentVersion, To: rel.TagName, Path: target, Backup: backup}, nil
}

// assetNameFor returns the goreleaser archive name for a platform.
func assetNameFor(goos, goarch string) (string, error) {
	arch := map[string]string{"amd64": "x86_64", "arm64": "arm64", "386": "i386"}[goarch]
	switch goos {
	case "darwin":
		return binaryName + "_Darwin_all.tar.gz", nil
	case "linux", "windows":
		if arch == "" {
			return "", fmt.Errorf("unsupported architecture: %s", goarch)
		}
		if goos == "windows" {
			return fmt.Sprintf("%s_Windows_%s.zip", binaryName, arch), nil
		}
		return fmt.Sprintf("%s_Linux_%s.tar.gz", binaryName, arch), nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// download streams url into a temp file under dir and returns its path and
// hex SHA-256.
func (c *Checker) download(ctx context.Context, url, dir string) (path, sum string, err error) {
	f, err := os.CreateTemp(dir, "."+binaryName+"-download-*")
	if err != nil {
		return "", "", err
	}
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	resp, err := c.get(ctx, url, "application/octet-stream")
	if err != nil {
		return "", "", err
	}
	defer func() { _ = resp.Body.Close() }()

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(f, h), io.LimitReader(resp.Body, maxArchiveSize+1))
	if err != nil {
		return "", "", err
	}
	if n > maxArchiveSize {
		return "", "", fmt.Errorf("archive exceeds %d MB", maxArchiveSize>>20)
	}
	return f.Name(), hex.EncodeToString(h.Sum(nil)), nil
}

func (c *Checker) expectedChecksum(ctx context.Context, url, asset string) (string, error) {
	resp, err := c.get(ctx, url, "")
	if err != nil {
		return "", fmt.Errorf("download checksums: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(data)[asset]
	if !ok {
		return "", fmt.Errorf("%w: no entry for %s", ErrChecksum, asset)
	}
	return want, nil
}

// parseChecksums reads sha256sum output, which marks binary-mode entries
// with a leading '*' on the file name.
func parseChecksums(data []byte) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		result[strings.TrimPrefix(parts[1], "*")] = strings.ToLower(parts[0])
	}
	return result
}

// extractBinary pulls the watcrack executable out of the archive at path.
// goreleaser nests it under a versioned directory, so only the base name
// is matched.
func extractBinary(path, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return extractFromZip(path, binaryName+".exe")
	}
	return extractFromTarGz(path, binaryName)
}

func extractFromTarGz(path, name string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return readBinary(tr, name)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func extractFromZip(path, name string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return readBinary(rc, name)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func readBinary(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxArchiveSize))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("binary %q in archive is empty", name)
	}
	return data, nil
}

// install writes bin over target with target's mode. The old binary is
// renamed to target+".old" and put back if the final rename fails.
func install(bin []byte, target string) (string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-new-*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return "", err
	}

	backup := target + ".old"
	_ = os.Remove(backup)
	if err := os.Rename(target, backup); err != nil {
		return "", fmt.Errorf("back up current binary: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		if rerr := os.Rename(backup, target); rerr != nil {
			return "", fmt.Errorf("%w (restore failed, previous binary is at %s: %v)", err, backup, rerr)
		}
		return "", err
	}
	return backup, nil
}
