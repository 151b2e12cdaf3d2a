package persistency

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
)

const WorkInProgressFileSuffix = ".wip"

// SaveToLocalFile replaces the file at the given path with the content.
// The content is written to a work-in-progress sibling first which then takes the place of the target.
func SaveToLocalFile(path string, content []byte) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("saving %s failed: %w", path, err)
		}
	}()

	tempPath := path + WorkInProgressFileSuffix

	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil { //plausible failure
		return
	}
	_, err = file.Write(content)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return
	}

	err = os.Rename(tempPath, path)
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replacing file with temporary working copy (%s) failed: %w", tempPath, err)
	}
	return nil
}

// Digest fingerprints content so that it can be recognized later without keeping it around.
func Digest(content []byte) uint64 {
	return xxhash.Sum64(content)
}

// MatchesLocalFile compares the content to the file at the given path. A missing file never matches.
func MatchesLocalFile(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bytes.Equal(existing, content), nil
}
