package core

import (
	"sync"
	"time"
)

// Entry represents a single log event on its way to an output target
type Entry struct {
	Time       time.Time
	Level      Level
	LoggerName string
	Message    string
	Err        error
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.LoggerName = ""
	e.Message = ""
	e.Err = nil
	entryPool.Put(e)
}
