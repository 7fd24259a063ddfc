package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	cases := []struct {
		name       string
		in         dto.PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"sin valores usa defaults", dto.PageRequest{}, 20, 0},
		{"limit negativo usa default", dto.PageRequest{Limit: -5, Offset: 10}, 20, 10},
		{"limit dentro del rango se respeta", dto.PageRequest{Limit: 50, Offset: 40}, 50, 40},
		{"limit en el tope se respeta", dto.PageRequest{Limit: 100}, 100, 0},
		{"limit sobre el tope se acota a 100", dto.PageRequest{Limit: 100000}, 100, 0},
		{"offset negativo se normaliza a cero", dto.PageRequest{Limit: 10, Offset: -1}, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.DefaultPage()
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
			assert.Equal(t, tc.wantOffset, tc.in.Offset)
		})
	}
}
