package session

// MemStore is an in-memory Store used in tests and anywhere persistence is
// unwanted.
type MemStore struct {
	sess *Session
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Load() (*Session, error) {
	if m.sess == nil {
		return nil, nil
	}
	copied := *m.sess
	return &copied, nil
}

func (m *MemStore) Save(sess *Session) error {
	copied := *sess
	m.sess = &copied
	return nil
}

func (m *MemStore) Clear() error {
	m.sess = nil
	return nil
}
