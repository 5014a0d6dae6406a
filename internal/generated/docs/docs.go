// Package docs registers the API description with swag so echo-swagger can
// serve it under /swagger/*.
package docs

import (
	"school/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "School API",
	Description:      "Courses, faculties, students groups, profiles, authority persons and students.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  "{}",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	if doc, err := servers.GetSwagger(); err == nil {
		if data, marshalErr := doc.MarshalJSON(); marshalErr == nil {
			SwaggerInfo.SwaggerTemplate = string(data)
		}
	}
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
