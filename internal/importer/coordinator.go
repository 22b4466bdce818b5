// Package importer runs one roster upload end to end: decode the raw
// bytes, fold rows into canonical schedules, merge into the store and
// record the upload in the history log. One upload is fully processed
// before control returns; there is no streaming ingestion.
package importer

import (
	"github.com/sirupsen/logrus"

	"jadwal/internal/model"
	"jadwal/internal/roster"
	"jadwal/internal/store"
)

// Coordinator wires the ingestion pipeline to the store.
type Coordinator struct {
	store *store.Store
	log   *store.UploadLog
}

// NewCoordinator creates a coordinator. The upload log may be nil, in
// which case history recording is skipped.
func NewCoordinator(s *store.Store, log *store.UploadLog) *Coordinator {
	return &Coordinator{store: s, log: log}
}

// IngestResult outcome of one upload.
type IngestResult struct {
	Records []*model.TraineeSchedule `json:"records"`
	Count   int                      `json:"count"`
}

// Ingest decodes, builds and merges one uploaded roster. A file that
// cannot be decoded aborts before the store is touched; a store write
// failure leaves the previous database authoritative. The history log
// is best-effort and never fails the upload.
func (c *Coordinator) Ingest(data []byte, filename string, dept model.DeptType) (*IngestResult, error) {
	rows, err := roster.Decode(filename, data)
	if err != nil {
		return nil, err
	}

	records := roster.Build(rows, dept.DefaultDepartment())

	if err := c.store.Merge(records, dept); err != nil {
		return nil, err
	}

	if c.log != nil {
		if err := c.log.Append(filename, dept, len(records)); err != nil {
			logrus.WithError(err).Warn("upload log append failed")
		}
	}

	logrus.WithFields(logrus.Fields{
		"filename": filename,
		"deptType": dept,
		"records":  len(records),
	}).Info("roster ingested")

	return &IngestResult{Records: records, Count: len(records)}, nil
}
