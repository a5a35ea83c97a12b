// FILE: lixenwraith/fixlog/storage.go
package fixlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lixenwraith/fixlog/civil"
)

// maxNameCollisions bounds the ".N" suffix search when a file name is taken
const maxNameCollisions = 1000

// hostname for file names, "unknownhost" when unavailable
func hostname() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return "unknownhost"
	}
	return strings.ReplaceAll(h, string(filepath.Separator), "_")
}

// logFileName builds "<name>.<YYYYMMDD-HHMMSS.UUUUUU>.<host>.<pid>[.<ext>]".
// The fixed-width UTC timestamp keeps names of one base sortable by creation.
func logFileName(name string, now civil.Instant, host string, pid int, ext string) string {
	dt, usec := civil.BreakInstant(now)
	base := fmt.Sprintf("%s.%04d%02d%02d-%02d%02d%02d.%06d.%s.%d",
		name, dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, usec, host, pid)
	if ext != "" {
		base += "." + ext
	}
	return base
}

// withCollisionSuffix inserts ".n" before the extension
func withCollisionSuffix(fileName, ext string, n int) string {
	if ext == "" {
		return fileName + "." + strconv.Itoa(n)
	}
	stem := strings.TrimSuffix(fileName, "."+ext)
	return stem + "." + strconv.Itoa(n) + "." + ext
}

// createNewLogFile opens a file that did not exist before. A name already
// taken within the same microsecond gets a ".1", ".2" ... suffix.
func createNewLogFile(dir, fileName, ext string) (*os.File, string, error) {
	candidate := fileName
	for n := 1; n <= maxNameCollisions; n++ {
		fullPath := filepath.Join(dir, candidate)
		file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			return file, fullPath, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmtErrorf("failed to create log file '%s': %w", fullPath, err)
		}
		candidate = withCollisionSuffix(fileName, ext, n)
	}
	return nil, "", fmtErrorf("no free log file name for '%s' in '%s'", fileName, dir)
}

// syncFile commits file contents to stable storage
func syncFile(file *os.File) error {
	if err := file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file '%s': %w", file.Name(), err)
	}
	return nil
}

// closeFile syncs then closes, reporting both failures
func closeFile(file *os.File) error {
	err := syncFile(file)
	if cerr := file.Close(); cerr != nil {
		err = combineErrors(err, fmtErrorf("failed to close log file '%s': %w", file.Name(), cerr))
	}
	return err
}
