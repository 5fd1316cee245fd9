package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://kasir:rahasia@db:5432/barber", "postgres://kasir:***@db:5432/barber"},
		{"postgres://kasir@db/barber", "postgres://kasir@db/barber"},
		{"postgres://db/barber", "postgres://db/barber"},
		{"postgres://kasir:p@ss@db/barber", "postgres://kasir:***@db/barber"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, redactURI(tt.in), tt.in)
	}
}
