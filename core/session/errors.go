package session

import "errors"

var (
	// ErrLoadSession is returned when reading a session from the backing store fails.
	ErrLoadSession = errors.New("failed to load session")
	// ErrSaveSession is returned when saving a session fails.
	ErrSaveSession = errors.New("failed to save session")
	// ErrDeleteSession is returned when deleting a session from the store fails.
	ErrDeleteSession = errors.New("failed to delete session")
	// ErrNilSession is returned when Commit or Destroy receive a nil session.
	ErrNilSession = errors.New("session is nil")
)
