// Package parsing holds small, forgiving parsers for strings coming from
// configuration files, CLI flags and scraped pages.
//
// They are independent pure functions and do not log.
package parsing
