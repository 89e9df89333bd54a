// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media keeps decrypted attachments in memory behind opaque
// "blob:<uuid>" handles until they are explicitly released.
package media

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/go-secure-chat/internal/crypto"
	"github.com/MKhiriev/go-secure-chat/internal/metrics"
	"github.com/MKhiriev/go-secure-chat/internal/utils"
)

// HandlePrefix starts every object handle.
const HandlePrefix = "blob:"

// ErrUnknownHandle is returned for a handle that was never issued or was
// already revoked.
var ErrUnknownHandle = errors.New("unknown media handle")

// Object is a decrypted attachment.
type Object struct {
	Handle   string
	Name     string
	MimeType string
	Size     int
}

type entry struct {
	Object
	data []byte
}

// Registry owns decrypted media objects. The zero value is not usable; use
// [NewRegistry].
type Registry struct {
	mu      sync.Mutex
	objects map[string]*entry

	ids     *utils.UUIDGenerator
	metrics *metrics.Metrics
}

// NewRegistry returns an empty registry. m may be nil.
func NewRegistry(m *metrics.Metrics) *Registry {
	return &Registry{
		objects: make(map[string]*entry),
		ids:     utils.NewUUIDGenerator(),
		metrics: m,
	}
}

// Create takes ownership of data and returns its handle.
func (r *Registry) Create(data []byte, name, mimeType string) Object {
	obj := Object{
		Handle:   HandlePrefix + r.ids.Generate(),
		Name:     name,
		MimeType: mimeType,
		Size:     len(data),
	}

	r.mu.Lock()
	r.objects[obj.Handle] = &entry{Object: obj, data: data}
	live := len(r.objects)
	r.mu.Unlock()

	r.metrics.LiveMediaObjects(live)
	return obj
}

// Lookup returns the object behind handle.
func (r *Registry) Lookup(handle string) (Object, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.objects[handle]
	if !ok {
		return Object{}, false
	}
	return e.Object, true
}

// WriteTo copies the decrypted bytes behind handle to w.
func (r *Registry) WriteTo(handle string, w io.Writer) (int64, error) {
	r.mu.Lock()
	e, ok := r.objects[handle]
	var data []byte
	if ok {
		data = e.data
	}
	r.mu.Unlock()

	if !ok {
		return 0, ErrUnknownHandle
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Revoke releases handle and wipes its bytes. It reports false for an
// unknown handle, so double release is harmless.
func (r *Registry) Revoke(handle string) bool {
	if !strings.HasPrefix(handle, HandlePrefix) {
		return false
	}

	r.mu.Lock()
	e, ok := r.objects[handle]
	if ok {
		delete(r.objects, handle)
	}
	live := len(r.objects)
	r.mu.Unlock()

	if !ok {
		return false
	}
	crypto.Wipe(e.data)
	r.metrics.LiveMediaObjects(live)
	return true
}

// RevokeAll releases every object.
func (r *Registry) RevokeAll() {
	r.mu.Lock()
	objects := r.objects
	r.objects = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range objects {
		crypto.Wipe(e.data)
	}
	r.metrics.LiveMediaObjects(0)
}

// Live returns the number of objects not yet released.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.objects)
}
