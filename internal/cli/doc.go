// Package cli implements the uakit command line.
//
//	uakit parse [USER_AGENT...] [--format text|json|yaml]
//	uakit serve
//	uakit version
package cli
