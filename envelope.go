/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package casestore

import "github.com/yardimhane/casestore/storagemodels"

// Envelope is the uniform result shape every operation reports through,
// regardless of which provider executed it. Data and Error are mutually
// exclusive: a failed operation carries a message and nil data, a
// successful list carries a (possibly empty) slice and nil error. A get
// with nil data and nil error means "record not found"; list responses
// disambiguate by returning an empty array instead.
type Envelope struct {
	Data  any     `json:"data"`
	Error *string `json:"error"`
	Total *int64  `json:"total,omitempty"`
}

// Failed reports whether the operation produced an error message.
func (e *Envelope) Failed() bool {
	return e.Error != nil
}

// Records returns the envelope data as a record list, or nil when the
// envelope does not carry one.
func (e *Envelope) Records() []storagemodels.Record {
	records, _ := e.Data.([]storagemodels.Record)
	return records
}

// Record returns the envelope data as a single record, or nil.
func (e *Envelope) Record() storagemodels.Record {
	rec, _ := e.Data.(storagemodels.Record)
	return rec
}

func okEnvelope(rec storagemodels.Record) *Envelope {
	return &Envelope{Data: rec}
}

func listEnvelope(records []storagemodels.Record, total int64) *Envelope {
	if records == nil {
		records = []storagemodels.Record{}
	}
	return &Envelope{Data: records, Total: &total}
}

func countEnvelope(total int64) *Envelope {
	return &Envelope{Total: &total}
}

func notFoundEnvelope() *Envelope {
	return &Envelope{}
}

func failureEnvelope(err error) *Envelope {
	msg := err.Error()
	return &Envelope{Error: &msg}
}
