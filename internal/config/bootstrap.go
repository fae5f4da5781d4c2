package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/rileyhilliard/indicate/internal/logger"
)

const (
	// BootstrapEnv names a bootstrap file, overriding the default location.
	BootstrapEnv = "INDICATE_CONFIG"
	// BootstrapFile is the default bootstrap file name under ConfigDir.
	BootstrapFile = "config.rc"
)

// FindBootstrap locates the bootstrap file of protocol lines:
// 1. Explicit path (from --bootstrap or the bootstrap setting)
// 2. $INDICATE_CONFIG
// 3. ~/.config/indicate/config.rc
//
// A path named by 1 or 2 must exist. A missing default file is not an
// error; the empty string is returned and startup uses the defaults.
func FindBootstrap(explicit string) (string, error) {
	if explicit != "" {
		return requireFile(ExpandTilde(explicit), "--bootstrap")
	}

	if env := os.Getenv(BootstrapEnv); env != "" {
		return requireFile(ExpandTilde(env), "$"+BootstrapEnv)
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}

	path := filepath.Join(home, ConfigDir, BootstrapFile)
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// OpenBootstrap finds and opens the bootstrap file. It returns a nil
// reader and an empty path when there is none.
func OpenBootstrap(explicit string, log logger.Logger) (io.ReadCloser, string, error) {
	if log == nil {
		log = logger.Noop()
	}

	path, err := FindBootstrap(explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		log.Debug("no bootstrap file, starting from defaults")
		return nil, "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, path, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open bootstrap file: "+path,
			"Check file permissions")
	}
	log.Debug("replaying bootstrap file %s", path)
	return f, path, nil
}

func requireFile(path, origin string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Bootstrap file not found: "+path,
				"Check the path given by "+origin)
		}
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot access bootstrap file: "+path,
			"Check file permissions")
	}
	if info.IsDir() {
		return "", errors.New(errors.ErrConfig,
			"Bootstrap path is a directory: "+path,
			"Point "+origin+" at a file of protocol lines")
	}
	return path, nil
}
