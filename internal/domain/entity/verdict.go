package entity

import "github.com/google/uuid"

// AccessLevel classifies a request's credentials.
type AccessLevel int

const (
	// AccessAnonymous means no (or invalid) credentials were presented.
	AccessAnonymous AccessLevel = iota
	// AccessUser means a valid session token without the admin role.
	AccessUser
	// AccessAdmin means the static admin key or an admin-role token.
	AccessAdmin
)

// AdminUsername is the synthetic identity attached to static-key verdicts.
const AdminUsername = "admin"

// Verdict is the authorization gate's classification of one request. It is
// an immutable value threaded explicitly through handlers and usecases;
// nothing request-scoped is ever stored in package globals.
type Verdict struct {
	Level    AccessLevel
	UserID   uuid.UUID
	Username string
	Role     Role
}

// Anonymous is the verdict for requests carrying no usable credentials.
func Anonymous() Verdict {
	return Verdict{Level: AccessAnonymous}
}

// IsAuthenticated reports whether the request presented a valid credential.
func (v Verdict) IsAuthenticated() bool {
	return v.Level != AccessAnonymous
}

// IsAdmin reports whether the request is privileged.
func (v Verdict) IsAdmin() bool {
	return v.Level == AccessAdmin
}

// Visibility describes which non-default-visible content a request may see.
type Visibility struct {
	IncludeUnpublished bool
	IncludeUnapproved  bool
}

// VisibilityFor resolves the content visibility for a verdict. Elevated
// visibility is granted only on the admin verdict; every other verdict is
// silently downgraded to published-only and approved-only rather than
// rejected.
func VisibilityFor(v Verdict) Visibility {
	if v.IsAdmin() {
		return Visibility{IncludeUnpublished: true, IncludeUnapproved: true}
	}

	return Visibility{}
}
