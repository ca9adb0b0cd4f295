// Package site holds the read-only site configuration: identity, navbar,
// footer, code themes, locales, the broken-link policy and the optional
// search/analytics integrations.
//
// A Config is constructed once per build (see Mongoloquent and the config
// package), validated before use and then passed explicitly to every
// consumer. Nothing in this package mutates a Config after construction.
package site
