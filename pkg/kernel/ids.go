package kernel

type RecruiterID string

func NewRecruiterID(id string) RecruiterID { return RecruiterID(id) }
func (r RecruiterID) String() string       { return string(r) }
func (r RecruiterID) IsEmpty() bool        { return string(r) == "" }

// PostingID identifies a job or internship posting. The canonical form is
// the 24-hex object-id string, but application records may reference it
// under older encodings (see the application reconciler).
type PostingID string

func NewPostingID(id string) PostingID { return PostingID(id) }
func (p PostingID) String() string     { return string(p) }
func (p PostingID) IsEmpty() bool      { return string(p) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }

// ApplicantID is the applicant-portal account id carried on an
// application record. It may be empty on older records.
type ApplicantID string

func (a ApplicantID) String() string { return string(a) }
func (a ApplicantID) IsEmpty() bool  { return string(a) == "" }

// MemberID identifies a premium membership record in the applicant store.
type MemberID string

func (m MemberID) String() string { return string(m) }

// BlobID addresses a resume file in the blob store. Valid ids are the
// 24-hex string form of an object id.
type BlobID string

func NewBlobID(id string) BlobID { return BlobID(id) }
func (b BlobID) String() string  { return string(b) }
func (b BlobID) IsEmpty() bool   { return string(b) == "" }

// IsValid reports whether the id is a well-formed object-id hex string.
func (b BlobID) IsValid() bool { return IsObjectIDHex(string(b)) }

// IsObjectIDHex reports whether s is exactly 24 lower- or upper-case hex
// characters.
func IsObjectIDHex(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
