// Package docs registers the checkout API document with swag so that
// echo-swagger can serve it under /swagger/*. The document is the same
// OpenAPI file the HTTP server validates requests against.
package docs

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Checkout",
	Description:      "Multi-step checkout wizard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  "{}",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var templateOnce sync.Once

// Register renders swagger into the template served by the swagger UI.
// Only the first call has an effect.
func Register(swagger *openapi3.T) error {
	var err error
	templateOnce.Do(func() {
		doc := *swagger
		doc.Servers = nil

		var data []byte
		if data, err = json.Marshal(&doc); err != nil {
			err = fmt.Errorf("render swagger template: %w", err)
			return
		}
		SwaggerInfo.SwaggerTemplate = string(data)
	})
	return err
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
