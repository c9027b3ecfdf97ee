// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package utils

import "math"

func Ptr[T any](t T) *T {
	return &t
}

func SafeDereference(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RoundToThousand rounds a currency amount to the nearest thousand.
func RoundToThousand(v float64) int {
	return int(math.Round(v/1000)) * 1000
}
