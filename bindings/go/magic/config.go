package magic

// Config configures [OpenConfig].
type Config struct {
	// Flags are combined and passed to magic_open.
	Flags []Flag
	// Database is a colon-separated list of database files to load. Empty
	// means the libmagic default, which honours $MAGIC.
	Database string
}

// DefaultConfig returns sensible defaults for [OpenConfig].
//
// Defaults:
//   - Flags: [Symlink] (matching file(1) on most systems)
//   - Database: "" (libmagic default)
func DefaultConfig() Config {
	return Config{
		Flags: []Flag{Symlink},
	}
}

// OpenConfig opens a cookie and loads its database in one step.
//
// If the database fails to load, the cookie is closed before the error is
// returned, so the caller never holds a half-initialized cookie.
func OpenConfig(cfg Config) (*Cookie, error) {
	c, err := Open(cfg.Flags...)
	if err != nil {
		return nil, err
	}

	if !c.Load(cfg.Database) {
		err := c.Err()
		if err == nil {
			err = &Error{Code: ErrOperationFailed, Op: "load", Message: "failed to load database " + cfg.Database}
		}
		_ = c.Close()
		return nil, err
	}

	return c, nil
}
