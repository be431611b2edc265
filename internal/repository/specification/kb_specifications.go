package specification

import "gorm.io/gorm"

type ByDocId struct {
	DocId int64
}

func (s ByDocId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("doc_id = ?", s.DocId)
}

type ByFilename struct {
	Filename string
}

func (s ByFilename) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("filename = ?", s.Filename)
}

type ByTraceId struct {
	TraceId string
}

func (s ByTraceId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("trace_id = ?", s.TraceId)
}
