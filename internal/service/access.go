package service

// WhitelistStore defines the config-backed whitelist operations the
// access service depends on
type WhitelistStore interface {
	Owner() int64
	UseWhitelist() bool
	Whitelist() map[string]int64
	AddWhitelistEntry(name string, userID int64) (bool, error)
	RemoveWhitelistEntry(name string) (bool, error)
}

// AccessService answers permission questions and manages the whitelist
type AccessService struct {
	store WhitelistStore
}

// NewAccessService creates a new access service
func NewAccessService(store WhitelistStore) *AccessService {
	return &AccessService{store: store}
}

// IsOwner checks whether a message comes from the owner
func (s *AccessService) IsOwner(userID int64) bool {
	return userID == s.store.Owner()
}

// IsAllowed checks whether a user may interact with the bot.
// Disabling the whitelist allows every user; the owner is always allowed.
func (s *AccessService) IsAllowed(userID int64) bool {
	if !s.store.UseWhitelist() || s.IsOwner(userID) {
		return true
	}

	for _, id := range s.store.Whitelist() {
		if id == userID {
			return true
		}
	}
	return false
}

// AddWhitelistEntry adds a user to the whitelist.
// Returns false when the name is already taken.
func (s *AccessService) AddWhitelistEntry(name string, userID int64) (bool, error) {
	return s.store.AddWhitelistEntry(name, userID)
}

// RemoveWhitelistEntry removes a user from the whitelist.
// Returns false when the name is unknown.
func (s *AccessService) RemoveWhitelistEntry(name string) (bool, error) {
	return s.store.RemoveWhitelistEntry(name)
}

// WhitelistEntries returns a snapshot of the current whitelist
func (s *AccessService) WhitelistEntries() map[string]int64 {
	return s.store.Whitelist()
}
