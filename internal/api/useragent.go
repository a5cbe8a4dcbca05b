package api

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/binder"
	"github.com/dmitrymomot/uakit/pkg/handler"
	"github.com/dmitrymomot/uakit/pkg/useragent"
	"github.com/dmitrymomot/uakit/pkg/validator"
)

// MaxUserAgentLength is the longest User-Agent accepted in request bodies.
const MaxUserAgentLength = 2048

// ParseResult is the API representation of a parsed user agent.
type ParseResult struct {
	useragent.UserAgent
	DeviceType string `json:"device_type"`
	BotName    string `json:"bot_name,omitempty"`
}

// NewParseResult adds the derived fields to ua.
func NewParseResult(ua useragent.UserAgent) ParseResult {
	return ParseResult{
		UserAgent:  ua,
		DeviceType: ua.DeviceType(),
		BotName:    ua.BotName(),
	}
}

type parseRequest struct {
	UserAgent string `json:"user_agent"`
}

type batchRequest struct {
	UserAgents []string `json:"user_agents"`
}

func (a *api) parseOwn() http.HandlerFunc {
	return handler.Wrap(func(r *http.Request, _ struct{}) handler.Response {
		ua, ok := useragent.FromContext(r.Context())
		if !ok {
			ua = a.parser.Parse(r.UserAgent())
		}
		if strings.TrimSpace(ua.Raw) == "" {
			return a.fail(useragent.ErrEmptyUserAgent)
		}
		return handler.JSON(NewParseResult(ua))
	}, handler.WithErrorHandler[struct{}](a.onError))
}

func (a *api) parseOne() http.HandlerFunc {
	return handler.Wrap(func(_ *http.Request, req parseRequest) handler.Response {
		if err := validator.Apply(
			validator.Required("user_agent", req.UserAgent),
			validator.MaxLen("user_agent", req.UserAgent, MaxUserAgentLength),
		); err != nil {
			return a.fail(err)
		}
		return handler.JSON(NewParseResult(a.parser.Parse(req.UserAgent)))
	},
		handler.WithBinders[parseRequest](binder.JSON()),
		handler.WithErrorHandler[parseRequest](a.onError),
	)
}

func (a *api) parseBatch() http.HandlerFunc {
	return handler.Wrap(func(_ *http.Request, req batchRequest) handler.Response {
		rules := []validator.Rule{
			validator.MinItems("user_agents", req.UserAgents, 1),
			validator.MaxItems("user_agents", req.UserAgents, a.maxBatchSize),
		}
		if len(req.UserAgents) <= a.maxBatchSize {
			rules = append(rules, validator.Each("user_agents", req.UserAgents, func(field, ua string) validator.Rule {
				return validator.MaxLen(field, ua, MaxUserAgentLength)
			})...)
		}
		if err := validator.Apply(rules...); err != nil {
			return a.fail(err)
		}

		results := make([]ParseResult, len(req.UserAgents))
		for i, raw := range req.UserAgents {
			results[i] = NewParseResult(a.parser.Parse(raw))
		}
		return handler.JSON(results, handler.WithJSONMeta(map[string]any{"count": len(results)}))
	},
		handler.WithBinders[batchRequest](binder.JSON()),
		handler.WithErrorHandler[batchRequest](a.onError),
	)
}
