package model

import "strings"

const (
	maxOwnerLen = 39
	maxNameLen  = 100
)

// IsValidOwner reports whether s is a syntactically legal GitHub user or
// organization name: 1-39 ASCII alphanumerics and hyphens, with no leading,
// trailing, or consecutive hyphens.
func IsValidOwner(s string) bool {
	if len(s) == 0 || len(s) > maxOwnerLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isAlnum(c):
		case c == '-':
			if i == 0 || i == len(s)-1 || s[i-1] == '-' {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsValidName reports whether s is a syntactically legal GitHub repository
// name: 1-100 ASCII alphanumerics, hyphens, underscores, and periods. The
// reserved names "." and ".." are rejected, as are names ending in ".git"
// in any letter case, which GitHub refuses to create.
func IsValidName(s string) bool {
	if len(s) == 0 || len(s) > maxNameLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameChar(s[i]) {
			return false
		}
	}
	if s == "." || s == ".." {
		return false
	}
	return !endsInGitFold(s)
}

// IsValidRepository reports whether s is a full "owner/name" specifier with
// a valid owner and a valid name. The predicate applies no normalization, so
// a trailing ".git" makes the specifier invalid.
func IsValidRepository(s string) bool {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(name, "/") {
		return false
	}
	return IsValidOwner(owner) && IsValidName(name)
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameChar(c byte) bool {
	return isAlnum(c) || c == '-' || c == '_' || c == '.'
}

func endsInGitFold(s string) bool {
	return len(s) >= 4 && strings.EqualFold(s[len(s)-4:], ".git")
}
