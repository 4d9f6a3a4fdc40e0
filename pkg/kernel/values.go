package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

// Normalized returns the email trimmed and lower-cased, the form used for
// cross-store matching.
func (e Email) Normalized() Email {
	return Email(strings.ToLower(strings.TrimSpace(string(e))))
}

type PostingTitle string

type CompanyName string
