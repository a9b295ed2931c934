package models

import "github.com/iudanet/docsync/pkg/api"

// ToAPI converts the document to its wire form.
func (d *Document) ToAPI() api.Document {
	return api.Document{
		ModifiedAt:   d.ModifiedAt,
		Path:         d.Path,
		Revision:     d.Revision,
		BaseRevision: d.BaseRevision,
		NodeID:       d.NodeID,
		Content:      d.Content,
		Timestamp:    d.Timestamp,
		Deleted:      d.Deleted,
	}
}

// DocumentFromAPI converts a wire document.
func DocumentFromAPI(d api.Document) *Document {
	return &Document{
		ModifiedAt:   d.ModifiedAt,
		Path:         d.Path,
		Revision:     d.Revision,
		BaseRevision: d.BaseRevision,
		NodeID:       d.NodeID,
		Content:      d.Content,
		Timestamp:    d.Timestamp,
		Deleted:      d.Deleted,
	}
}
