// Package environment defines the deployment stage of the service and carries
// it through request contexts so log records and handlers can branch on it.
//
//	env := environment.Parse(cfg.AppEnv)
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(r.Context()) {
//	    // hide internal error details
//	}
package environment
