// Package validator provides rule-based validation for request bodies and
// configuration.
//
// Rules are values; Apply runs them all and collects every failure:
//
//	err := validator.Apply(
//		validator.Required("user_agent", req.UserAgent),
//		validator.MaxLen("user_agent", req.UserAgent, 2048),
//	)
//	if errs := validator.Extract(err); errs != nil {
//		fmt.Println(errs.Fields())
//	}
//
// Each expands a rule over a slice:
//
//	rules := validator.Each("user_agents", req.UserAgents, func(f, ua string) validator.Rule {
//		return validator.MaxLen(f, ua, 2048)
//	})
//	err := validator.Apply(rules...)
package validator
