package kvstore

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Validator is implemented by stored types that check their own shape.
// Load treats a value that fails validation as absent.
type Validator interface {
	Validate() error
}

// Adapter reads and writes typed values through a Store.
// It never returns errors to its callers; the most recent write failure is
// available from Err.
type Adapter struct {
	store Store
	codec Codec
	log   logrus.FieldLogger
	err   error
}

// NewAdapter wraps store. A nil codec selects JSON and a nil logger discards.
func NewAdapter(store Store, codec Codec, log logrus.FieldLogger) *Adapter {
	if codec == nil {
		codec = JSONCodec{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Adapter{store: store, codec: codec, log: log}
}

// Err returns the error from the last Save, or nil if it succeeded.
func (a *Adapter) Err() error {
	return a.err
}

// Load returns the value stored under key, or def if the key is absent, the
// store cannot be read, or the stored bytes do not decode into a valid T.
func Load[T any](a *Adapter, key string, def T) T {
	entry := a.log.WithField("key", key)

	raw, ok, err := a.store.Get(key)
	if err != nil {
		entry.WithError(err).Warn("store read failed, using default")
		return def
	}
	if !ok {
		entry.Debug("key not found, using default")
		return def
	}

	var v T
	if err := a.codec.Unmarshal(raw, &v); err != nil {
		entry.WithError(err).Debug("stored value does not decode, using default")
		return def
	}
	if vv, ok := any(v).(Validator); ok {
		if err := vv.Validate(); err != nil {
			entry.WithError(err).Debug("stored value is invalid, using default")
			return def
		}
	}
	return v
}

// Save encodes v and replaces the value stored under key.
// Failures are logged and recorded on the adapter.
func Save[T any](a *Adapter, key string, v T) {
	entry := a.log.WithField("key", key)

	data, err := a.codec.Marshal(v)
	if err != nil {
		a.err = fmt.Errorf("encode %s: %w", key, err)
		entry.WithError(err).Warn("encode failed, value not saved")
		return
	}
	if err := a.store.Set(key, data); err != nil {
		a.err = fmt.Errorf("write %s: %w", key, err)
		entry.WithError(err).Warn("store write failed, value not saved")
		return
	}
	a.err = nil
	entry.WithField("bytes", len(data)).Debug("saved")
}
