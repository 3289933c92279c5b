package session

import "maps"

// flashPrefix namespaces one-time values inside the session data.
const flashPrefix = "__flash_"

// Session is an in-memory key-value view of one client's session.
// Changes are local until the session is committed through a Store.
type Session struct {
	id       string
	previous string
	data     map[string]string
	modified bool
}

// New creates a session with the given id and a copy of data.
// An empty id means the session has never been persisted.
func New(id string, data map[string]string) *Session {
	s := &Session{
		id:   id,
		data: make(map[string]string, len(data)),
	}
	maps.Copy(s.data, data)
	return s
}

// ID returns the storage identifier, or "" for sessions that were never
// persisted or that keep their data in the cookie itself.
func (s *Session) ID() string {
	return s.id
}

// Get returns the value stored under key. Flash values are returned once and
// then removed.
func (s *Session) Get(key string) (string, bool) {
	if v, ok := s.data[key]; ok {
		return v, true
	}
	if v, ok := s.data[flashPrefix+key]; ok {
		delete(s.data, flashPrefix+key)
		s.modified = true
		return v, true
	}
	return "", false
}

// Has reports whether key holds a regular or flash value.
func (s *Session) Has(key string) bool {
	if _, ok := s.data[key]; ok {
		return true
	}
	_, ok := s.data[flashPrefix+key]
	return ok
}

// Set stores value under key, overwriting any previous value.
func (s *Session) Set(key, value string) {
	s.data[key] = value
	s.modified = true
}

// Flash stores a value that is removed after the first Get.
func (s *Session) Flash(key, value string) {
	s.data[flashPrefix+key] = value
	s.modified = true
}

// Unset removes key.
func (s *Session) Unset(key string) {
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.modified = true
}

// Data returns a copy of the session data, flash entries included.
func (s *Session) Data() map[string]string {
	return maps.Clone(s.data)
}

// IsModified reports whether the session changed since it was loaded.
func (s *Session) IsModified() bool {
	return s.modified
}

// Regenerate detaches the session from its storage identifier. The next
// Commit stores the data under a new id and deletes the old one, so an id
// known before a privilege change stops resolving after it.
func (s *Session) Regenerate() {
	if s.id != "" {
		s.previous = s.id
	}
	s.id = ""
	s.modified = true
}

// clear drops all data and the storage identifier.
func (s *Session) clear() {
	s.id = ""
	s.previous = ""
	s.data = make(map[string]string)
	s.modified = true
}
