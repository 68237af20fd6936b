// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package locate

import "testing"

func TestLocation_Place(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"all parts", Location{City: "Berlin", Region: "Land Berlin", Country: "DE"}, "Berlin, Land Berlin, DE"},
		{"missing region", Location{City: "Berlin", Country: "DE"}, "Berlin, DE"},
		{"country only", Location{Country: "DE"}, "DE"},
		{"nothing known", Location{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.loc.Place(); got != tc.want {
				t.Errorf("expected place to be %q, got %q", tc.want, got)
			}
		})
	}
}
