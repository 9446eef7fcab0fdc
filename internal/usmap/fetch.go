package usmap

import (
	"archive/zip"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DefaultBoundaryURL is the Census cartographic boundary file at 1:20m,
// the resolution suited to a full-US thematic map.
const DefaultBoundaryURL = "https://www2.census.gov/geo/tiger/GENZ2021/shp/cb_2021_us_state_20m.zip"

// Fetch downloads the boundary ZIP, extracts it into destDir, and returns
// the path to the contained .shp file.
func Fetch(ctx context.Context, client *http.Client, url, destDir string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	log := zap.L().With(zap.String("component", "usmap.fetch"))

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", eris.Wrap(err, "usmap: create dest dir")
	}

	zipPath := filepath.Join(destDir, filepath.Base(url))
	log.Info("downloading boundary shapefile", zap.String("url", url))
	if err := downloadFile(ctx, client, url, zipPath); err != nil {
		return "", eris.Wrap(err, "usmap: download boundary shapefile")
	}

	if err := extractZIP(zipPath, destDir); err != nil {
		return "", eris.Wrap(err, "usmap: extract boundary ZIP")
	}

	shpPath, err := findFileByExt(destDir, ".shp")
	if err != nil {
		return "", eris.Wrap(err, "usmap: find .shp file")
	}

	log.Info("boundary shapefile ready", zap.String("path", shpPath))
	return shpPath, nil
}

// downloadFile downloads a URL to a local file.
func downloadFile(ctx context.Context, client *http.Client, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return eris.Wrap(err, "build request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return eris.Wrap(err, "download")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("download returned status %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return eris.Wrap(err, "create file")
	}
	defer f.Close() //nolint:errcheck

	if _, err := io.Copy(f, resp.Body); err != nil {
		return eris.Wrap(err, "write file")
	}

	return nil
}

// extractZIP extracts a ZIP archive to the destination directory.
func extractZIP(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return eris.Wrap(err, "open zip")
	}
	defer r.Close() //nolint:errcheck

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		destPath := filepath.Join(destDir, filepath.Base(f.Name))

		rc, err := f.Open()
		if err != nil {
			return eris.Wrapf(err, "open zip entry %s", f.Name)
		}

		outFile, err := os.Create(destPath)
		if err != nil {
			_ = rc.Close()
			return eris.Wrapf(err, "create %s", destPath)
		}

		if _, err := io.Copy(outFile, rc); err != nil {
			_ = outFile.Close()
			_ = rc.Close()
			return eris.Wrapf(err, "extract %s", f.Name)
		}
		_ = outFile.Close()
		_ = rc.Close()
	}

	return nil
}

// findFileByExt finds the first file with the given extension in a directory.
func findFileByExt(dir, ext string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", eris.Wrap(err, "read directory")
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ext) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", eris.Errorf("no %s file found in %s", ext, dir)
}
