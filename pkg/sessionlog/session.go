package sessionlog

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uakit/pkg/clientip"
	"github.com/dmitrymomot/uakit/pkg/fingerprint"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// UnknownUserAgent is stored when a request carries no User-Agent header.
const UnknownUserAgent = "unknown"

// Session is one login of a user on one device.
type Session struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	AccessedAt  time.Time `json:"accessed_at"`
}

// Validate checks the fields every store relies on.
func (s *Session) Validate() error {
	switch {
	case s == nil || s.ID == uuid.Nil:
		return ErrInvalidSession
	case s.UserID == "":
		return ErrInvalidUserID
	}
	return nil
}

// apply overwrites the request-derived fields that meta carries.
func (s *Session) apply(meta Metadata, at time.Time) {
	if meta.IPAddress != "" {
		s.IPAddress = meta.IPAddress
	}
	if meta.UserAgent != "" {
		s.UserAgent = meta.UserAgent
	}
	if meta.Fingerprint != "" {
		s.Fingerprint = meta.Fingerprint
	}
	s.AccessedAt = at
}

// Metadata is what a request tells about the client behind a session.
type Metadata struct {
	IPAddress   string `json:"ip_address"`
	UserAgent   string `json:"user_agent"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// MetadataFromRequest captures the client IP, the User-Agent header and the
// client fingerprint. A missing User-Agent is recorded as "unknown".
func MetadataFromRequest(r *http.Request) Metadata {
	ip := clientip.FromContext(r.Context())
	if ip == "" {
		ip = clientip.GetIP(r)
	}

	ua := r.UserAgent()
	parsed, ok := useragent.FromContext(r.Context())
	if !ok || parsed.Raw != ua {
		parsed = useragent.Parse(ua)
	}
	if ua == "" {
		ua = UnknownUserAgent
	}

	return Metadata{
		IPAddress:   ip,
		UserAgent:   ua,
		Fingerprint: fingerprint.GenerateWith(r, parsed),
	}
}

// View is a session as presented to its owner: the stored record plus the
// parsed device and whether it is the session making the request.
type View struct {
	Session
	Device  useragent.UserAgent `json:"device"`
	Current bool                `json:"current"`
}

func newView(s Session, current uuid.UUID) View {
	return View{
		Session: s,
		Device:  useragent.Parse(s.UserAgent),
		Current: current != uuid.Nil && s.ID == current,
	}
}
