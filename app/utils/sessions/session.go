package sessions

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "storefront-session"

	userIDSessionKey   = "userID"
	cartKeySessionName = "sessionKey"
)

// Store is the request-identity half of the session: who the caller is
// (a logged-in user ID, if any) and the anonymous session key their
// cart is scoped by. SessionKey allocates a fresh key on first use.
type Store interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	SessionKey(w http.ResponseWriter, r *http.Request) (string, error)
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieStore struct {
	store *sessions.CookieStore
}

func NewCookieStore(keyPairs ...[]byte) *CookieStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: store}
}

func (c *CookieStore) GetUserID(r *http.Request) string {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil || session == nil {
		return ""
	}
	userID, ok := session.Values[userIDSessionKey].(string)
	if !ok {
		return ""
	}
	return userID
}

func (c *CookieStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil && session == nil {
		return err
	}
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

// SessionKey returns the caller's anonymous session key, allocating and
// persisting a new one when the session does not have one yet.
func (c *CookieStore) SessionKey(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil && session == nil {
		return "", err
	}

	if key, ok := session.Values[cartKeySessionName].(string); ok && key != "" {
		return key, nil
	}

	key := uuid.New().String()
	session.Values[cartKeySessionName] = key
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return key, nil
}

func (c *CookieStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil && session == nil {
		return err
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
