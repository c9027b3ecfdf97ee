// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cache provides the engine's best-effort key-value cache
// implementations. All engine computations must behave identically with the
// noop cache - caching is an optimization, never load-bearing, except that
// the strategy matrix cache has to be invalidated when gaps change.
package cache

import (
	"context"
	"time"
)

// Noop satisfies shared.Cache and caches nothing. Used in unit tests and
// when caching is disabled.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

func (n *Noop) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) {
}

func (n *Noop) Del(ctx context.Context, key string) {
}
