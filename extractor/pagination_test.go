package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPageURL(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			"rel next link",
			`<html><head><link rel="next" href="/menu?page=2"></head><body></body></html>`,
			"/menu?page=2",
		},
		{
			"rel next wins over anchors",
			`<html><head><link rel="next" href="/menu?page=2"></head>
			 <body><a href="/otra">Siguiente</a></body></html>`,
			"/menu?page=2",
		},
		{
			"spanish anchor label",
			`<body><a href="/inicio">Inicio</a><a href="/menu?page=3">Siguiente</a></body>`,
			"/menu?page=3",
		},
		{
			"english anchor label",
			`<body><a href="/menu?page=2">Next page</a></body>`,
			"/menu?page=2",
		},
		{
			"guillemet label",
			`<body><a href="/menu?page=2">»</a></body>`,
			"/menu?page=2",
		},
		{
			"no pagination",
			`<body><a href="/contacto">Contacto</a></body>`,
			"",
		},
		{
			"label without href attribute",
			`<body><a>Siguiente</a></body>`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument(tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.want, NextPageURL(doc))
		})
	}
}
