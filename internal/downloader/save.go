package downloader

import (
	"os"

	"gitlab.com/tozd/go/errors"
)

// SaveFile writes data to path in one step. The bytes go to path+".part",
// which is then renamed over path, so path is either left untouched or holds
// all of data. The file is created with mode 0666 before the umask.
func SaveFile(path string, data []byte) (errE error) {
	tmpPath := path + ".part"
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return errors.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if errE != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Errorf("%w: %w", ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Errorf("%w: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("%w: %w", ErrIO, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
