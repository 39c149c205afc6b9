package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	assert.Empty(t, RenderFileTree("shop", nil))

	got := RenderFileTree("shop", map[string]string{
		"routes/api.go":                 "appended",
		"app/models/order.go":           "created",
		"app/http/controllers/order.go": "created",
		"lang/en/messages.yaml":         "",
		"README.md":                     "created",
	})

	want := "shop/\n" +
		"├── app/\n" +
		"│   ├── http/\n" +
		"│   │   └── controllers/\n" +
		"│   │       └── order.go                created\n" +
		"│   └── models/\n" +
		"│       └── order.go                    created\n" +
		"├── lang/\n" +
		"│   └── en/\n" +
		"│       └── messages.yaml\n" +
		"├── routes/\n" +
		"│   └── api.go                          appended\n" +
		"└── README.md                           created\n"
	assert.Equal(t, want, got)
}
