// Package session owns the persisted client state that the web client kept in
// browser local storage. Network code never reads ambient storage directly; a
// Store is injected wherever the token is needed, which keeps the 401-clear
// behavior testable.
package session

// Storage keys carried over from the web client.
const (
	TokenKey      = "authToken"
	LegacyUserKey = "user"
	LanguageKey   = "language"
)

// Store is a string key/value store with local-storage semantics: reads of
// absent keys return "", writes always succeed from the caller's point of
// view.
type Store interface {
	Get(key string) string
	Set(key, value string)
	Remove(key string)
}
