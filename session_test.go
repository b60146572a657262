// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStores(t *testing.T) {
	for name, store := range map[string]sessionStore{
		"plain":  &session{},
		"shared": &sharedSession{},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := store.token()
			assert.False(t, ok)

			_, ok = store.observe(http.Header{})
			assert.False(t, ok)
			_, ok = store.token()
			assert.False(t, ok)

			h := http.Header{}
			h.Set("x-transmission-session-id", "first")
			id, ok := store.observe(h)
			assert.True(t, ok)
			assert.Equal(t, "first", id)

			// A response without the header leaves the token alone.
			_, ok = store.observe(http.Header{})
			assert.False(t, ok)
			id, ok = store.token()
			assert.True(t, ok)
			assert.Equal(t, "first", id)

			h.Set(SessionIDHeader, "second")
			store.observe(h)
			id, _ = store.token()
			assert.Equal(t, "second", id)
		})
	}
}
