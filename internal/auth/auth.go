package auth

// Authorizer is the capability check the transport layer consults before
// letting a caller run privileged operations. It decouples the engine
// from any particular platform's role model.
type Authorizer interface {
	CanAdminister(actorID string) bool
}

// StaticAuthorizer grants administration to a fixed set of user ids,
// typically loaded from configuration.
type StaticAuthorizer struct {
	admins map[string]struct{}
}

// NewStatic builds an authorizer from a list of admin user ids
func NewStatic(adminIDs []string) *StaticAuthorizer {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		if id != "" {
			admins[id] = struct{}{}
		}
	}
	return &StaticAuthorizer{admins: admins}
}

// CanAdminister reports whether the actor holds the admin capability
func (s *StaticAuthorizer) CanAdminister(actorID string) bool {
	_, ok := s.admins[actorID]
	return ok
}
