package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uakit/pkg/binder"
	"github.com/dmitrymomot/uakit/pkg/handler"
	"github.com/dmitrymomot/uakit/pkg/sessionlog"
)

// SessionHeader carries the id of the session making the request.
const SessionHeader = "X-Session-ID"

type userPath struct {
	UserID string `path:"userID"`
}

type sessionPath struct {
	SessionID uuid.UUID `path:"sessionID"`
}

// withCurrentSession marks the session named by SessionHeader as current.
// A missing or malformed header is ignored.
func withCurrentSession(r *http.Request) context.Context {
	id, err := uuid.Parse(r.Header.Get(SessionHeader))
	if err != nil {
		return r.Context()
	}
	return sessionlog.WithCurrent(r.Context(), id)
}

func (a *api) listSessions() http.HandlerFunc {
	return handler.Wrap(func(r *http.Request, req userPath) handler.Response {
		views, err := a.sessions.List(withCurrentSession(r), req.UserID)
		if err != nil {
			return a.fail(err)
		}
		return handler.JSON(views, handler.WithJSONMeta(map[string]any{"count": len(views)}))
	},
		handler.WithBinders[userPath](binder.Path()),
		handler.WithErrorHandler[userPath](a.onError),
	)
}

func (a *api) startSession() http.HandlerFunc {
	return handler.Wrap(func(r *http.Request, req userPath) handler.Response {
		sess, err := a.sessions.Start(r.Context(), req.UserID, sessionlog.MetadataFromRequest(r))
		if err != nil {
			return a.fail(err)
		}
		view, err := a.sessions.Get(sessionlog.WithCurrent(r.Context(), sess.ID), sess.ID)
		if err != nil {
			return a.fail(err)
		}
		return handler.JSON(view, handler.WithJSONStatus(http.StatusCreated))
	},
		handler.WithBinders[userPath](binder.Path()),
		handler.WithErrorHandler[userPath](a.onError),
	)
}

// endOtherSessions signs the user out everywhere except the current session.
// Without a current session every session of the user is ended.
func (a *api) endOtherSessions() http.HandlerFunc {
	return handler.Wrap(func(r *http.Request, req userPath) handler.Response {
		keep, _ := sessionlog.CurrentFromContext(withCurrentSession(r))
		removed, err := a.sessions.EndOthers(r.Context(), req.UserID, keep)
		if err != nil {
			return a.fail(err)
		}
		return handler.JSON(map[string]int{"removed": removed})
	},
		handler.WithBinders[userPath](binder.Path()),
		handler.WithErrorHandler[userPath](a.onError),
	)
}

func (a *api) getSession() http.HandlerFunc {
	return handler.Wrap(func(r *http.Request, req sessionPath) handler.Response {
		view, err := a.sessions.Get(withCurrentSession(r), req.SessionID)
		if err != nil {
			return a.fail(err)
		}
		return handler.JSON(view)
	},
		handler.WithBinders[sessionPath](binder.Path()),
		handler.WithErrorHandler[sessionPath](a.onError),
	)
}

func (a *api) touchSession() http.HandlerFunc {
	return handler.Wrap(func(r *http.Request, req sessionPath) handler.Response {
		if err := a.sessions.Touch(r.Context(), req.SessionID, sessionlog.MetadataFromRequest(r)); err != nil {
			return a.fail(err)
		}
		return handler.Empty()
	},
		handler.WithBinders[sessionPath](binder.Path()),
		handler.WithErrorHandler[sessionPath](a.onError),
	)
}

func (a *api) endSession() http.HandlerFunc {
	return handler.Wrap(func(r *http.Request, req sessionPath) handler.Response {
		if err := a.sessions.End(r.Context(), req.SessionID); err != nil {
			return a.fail(err)
		}
		return handler.Empty()
	},
		handler.WithBinders[sessionPath](binder.Path()),
		handler.WithErrorHandler[sessionPath](a.onError),
	)
}
