package models

import "time"

// RevisionRef identifies one side of a conflict. It is a value type and never
// changes after construction.
type RevisionRef struct {
	modifiedTime time.Time
	revisionID   string
	isDeleted    bool
}

// NewRevisionRef создает ссылку на ревизию
func NewRevisionRef(revisionID string, modifiedTime time.Time, isDeleted bool) RevisionRef {
	return RevisionRef{
		revisionID:   revisionID,
		modifiedTime: modifiedTime,
		isDeleted:    isDeleted,
	}
}

// RevisionID returns the revision identifier.
func (r RevisionRef) RevisionID() string { return r.revisionID }

// ModifiedTime returns when the revision was written.
func (r RevisionRef) ModifiedTime() time.Time { return r.modifiedTime }

// IsDeleted reports whether the revision is a deletion.
func (r RevisionRef) IsDeleted() bool { return r.isDeleted }

// Label renders the modification time for the decision surface, marking deleted revisions.
func (r RevisionRef) Label() string {
	label := r.modifiedTime.Local().Format("2006-01-02 15:04:05")
	if r.isDeleted {
		label += " (Deleted)"
	}
	return label
}
