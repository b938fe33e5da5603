package domain

// StateEntry is one key of an owner's key-value mapping. (Owner, Key) is unique.
type StateEntry struct {
	Owner string
	Key   string
	Value string
}

// UserDetails is the administrator view of a single user: its role and every entry it owns.
type UserDetails struct {
	User   User
	States map[string]string
}
