package enum

// ClientType distinguishes business from private clients
type ClientType string

const (
	ClientTypeBusiness ClientType = "zakelijk"
	ClientTypePrivate  ClientType = "particulier"
)

func (t ClientType) IsValid() bool {
	return t == ClientTypeBusiness || t == ClientTypePrivate
}

// ClientStatus represents whether a client is still active
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "actief"
	ClientStatusInactive ClientStatus = "inactief"
)

func (s ClientStatus) IsValid() bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}
