package fluentval

import "strings"

// Input-hardening rules for user-supplied text. These are substring
// blocklists, not parsers; they reject obviously hostile input early but are
// no substitute for parameterized queries or output encoding. A nil or
// non-text value contains no payload and passes.

var (
	sqlInjectionPatterns = []string{
		"select ", "insert ", "update ", "delete ", "drop ",
		"create ", "alter ", "exec ", "execute ", "union ",
		"' or ", "\" or ", "1=1", "1 = 1", "or 1=1",
		"--", "/*", "*/", "xp_", "sp_", "0x",
	}

	xssPatterns = []string{
		"<script", "javascript:", "onerror=", "onload=",
		"onclick=", "onmouseover=", "<iframe", "eval(",
		"expression(", "vbscript:", "data:text/html",
	}

	commandInjectionPatterns = []string{
		";", "&", "|", "`", "$", "(", ")",
		"<", ">", "\n", "\r", "&&", "||",
	}

	ldapInjectionPatterns = []string{
		"*", "(", ")", "\\", "/", "NUL",
	}
)

func containsAnyPattern(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// ContainsNoSQLInjection rejects text holding common SQL injection markers.
// Matching is case-insensitive.
func (c *RuleChain[T]) ContainsNoSQLInjection() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return true
		}
		return !containsAnyPattern(strings.ToLower(s), sqlInjectionPatterns)
	}, "must not contain SQL injection patterns")
}

// ContainsNoXSS rejects text holding common cross-site scripting vectors
// such as script tags, javascript: URLs and inline event handlers.
func (c *RuleChain[T]) ContainsNoXSS() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return true
		}
		return !containsAnyPattern(strings.ToLower(s), xssPatterns)
	}, "must not contain XSS attack patterns")
}

// ContainsNoCommandInjection rejects text holding shell metacharacters.
func (c *RuleChain[T]) ContainsNoCommandInjection() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return true
		}
		return !containsAnyPattern(s, commandInjectionPatterns)
	}, "must not contain command injection patterns")
}

// ContainsNoLDAPInjection rejects text holding LDAP filter metacharacters.
func (c *RuleChain[T]) ContainsNoLDAPInjection() ChainStep[T] {
	return c.add(func(v value) bool {
		s, ok := v.text()
		if !ok {
			return true
		}
		return !containsAnyPattern(s, ldapInjectionPatterns)
	}, "must not contain LDAP injection patterns")
}
