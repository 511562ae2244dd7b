// Package docs registers the Swagger spec served at /swagger/.
// It follows swag's generated layout but is maintained by hand: keep the JSON in
// step with the godoc annotations in internal/delivery/http/controllers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness and run counters",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/host-event/plan": {
            "post": {
                "description": "Fetches the partner roster and computes, per country, the two consecutive days most partners can attend. Nothing is sent.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "host-event"
                ],
                "summary": "Preview each country's event window",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.PlanSuccessResponse"
                        }
                    },
                    "422": {
                        "description": "error.code: data_format",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "502": {
                        "description": "error.code: upstream_unavailable, no_partners",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "504": {
                        "description": "error.code: timeout",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/host-event/run": {
            "post": {
                "description": "Computes each country's event window and dispatches the invitation payload. Any malformed date aborts the whole run.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "host-event"
                ],
                "summary": "Select event windows and send invitations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.RunSuccessResponse"
                        }
                    },
                    "422": {
                        "description": "error.code: data_format",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "502": {
                        "description": "error.code: upstream_unavailable, no_partners, dispatch_failed",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "504": {
                        "description": "error.code: timeout",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.PlanSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/domain.HostEventPlan"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "controllers.RunSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/domain.HostEventResult"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "domain.CountryInvitation": {
            "type": "object",
            "properties": {
                "attendeeCount": {
                    "type": "integer"
                },
                "attendees": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                }
            }
        },
        "domain.DispatchAck": {
            "type": "object",
            "properties": {
                "body": {
                    "type": "string"
                },
                "delivered": {
                    "type": "integer"
                },
                "provider": {
                    "type": "string"
                },
                "status_code": {
                    "type": "integer"
                }
            }
        },
        "domain.HostEventPlan": {
            "type": "object",
            "properties": {
                "partner_count": {
                    "type": "integer"
                },
                "payload": {
                    "$ref": "#/definitions/domain.InvitationPayload"
                },
                "planned_at": {
                    "type": "string"
                },
                "run_id": {
                    "type": "string"
                },
                "skipped_countries": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.HostEventResult": {
            "type": "object",
            "properties": {
                "ack": {
                    "$ref": "#/definitions/domain.DispatchAck"
                },
                "plan": {
                    "$ref": "#/definitions/domain.HostEventPlan"
                }
            }
        },
        "domain.InvitationPayload": {
            "type": "object",
            "properties": {
                "countries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CountryInvitation"
                    }
                }
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Partner Events API",
	Description:      "Selects each country's best two-day partner event window and sends the invitations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
