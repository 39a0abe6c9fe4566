package domain

// Status is the publication state of a document.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished:
		return true
	default:
		return false
	}
}

// IsPublished reports whether the document is visible outside preview mode.
func (s Status) IsPublished() bool {
	return s == StatusPublished
}

// String implements fmt.Stringer. An unset status reads as draft, matching
// the CMS initial value.
func (s Status) String() string {
	if s == "" {
		return string(StatusDraft)
	}
	return string(s)
}
