// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package strutil

import (
	"regexp"
	"strings"
)

// emailPattern matches the practical subset of RFC 5322 addresses:
// a local part of letters, digits, and common punctuation, then one or
// more dot-separated domain labels. Labels start and end with an
// alphanumeric, allow internal hyphens, and cap at 63 characters.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// urlPattern matches http/https URLs: scheme, optional www., a host of
// up to 256 characters, a dot, a short alphanumeric TLD, and an
// optional path/query/fragment tail.
var urlPattern = regexp.MustCompile(
	`^https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

// IsEmail reports whether s, after trimming surrounding whitespace,
// looks like a deliverable email address. The check is format-only; it
// says nothing about whether the mailbox exists.
//
//	strutil.IsEmail("test@example.com") // true
//	strutil.IsEmail("invalid-email")    // false
func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsURL reports whether s, after trimming surrounding whitespace, is an
// http or https URL.
//
//	strutil.IsURL("https://flutter.dev") // true
//	strutil.IsURL("not-a-url")           // false
func IsURL(s string) bool {
	return urlPattern.MatchString(strings.TrimSpace(s))
}
