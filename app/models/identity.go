package models

// Identity is the key a cart is scoped by: an authenticated user ID or
// an anonymous session key, never both. It is resolved once per request
// and passed explicitly into every cart and checkout call.
type Identity struct {
	UserID     string
	SessionKey string
}

func (i Identity) Anonymous() bool {
	return i.UserID == ""
}

func (i Identity) Empty() bool {
	return i.UserID == "" && i.SessionKey == ""
}
