package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Event Portal API",
        "description": "University event portal: catalog, proposals, moderation and notifications",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Public event catalog"},
        {"name": "Proposals", "description": "Community event proposals"},
        {"name": "Registrations", "description": "Attendee sign-ups"},
        {"name": "Change Requests", "description": "Post-approval change requests"},
        {"name": "Moderation", "description": "Administrative review queue"},
        {"name": "Notifications", "description": "Admin notification inbox"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List approved events",
                "parameters": [
                    {"name": "audience", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "cost", "in": "query", "type": "string", "enum": ["all", "free", "paid"]},
                    {"name": "date", "in": "query", "type": "string", "enum": ["all", "this-week", "this-month", "next-month"]},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get approved event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/proposals": {
            "post": {
                "tags": ["Proposals"],
                "summary": "Submit event proposal",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProposeEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation Failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{id}/registrations": {
            "post": {
                "tags": ["Registrations"],
                "summary": "Register for event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Full Capacity", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation Failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{id}/change-requests": {
            "post": {
                "tags": ["Change Requests"],
                "summary": "Submit change request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangeRequestPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation Failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{id}/change-requests/current-value": {
            "get": {
                "tags": ["Change Requests"],
                "summary": "Current value for a change target",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "type", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/events": {
            "get": {
                "tags": ["Moderation"],
                "summary": "List events by approval status",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["pending", "approved", "rejected", "needs-changes"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/events/{id}/review": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Review pending event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "X-Reviewer", "in": "header", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReviewEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already Reviewed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation Failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/events/export": {
            "get": {
                "tags": ["Moderation"],
                "summary": "Export approved events",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "412": {"description": "Exports Disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "tags": ["Notifications"],
                "summary": "Notification feed",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notifications/{id}/read": {
            "post": {
                "tags": ["Notifications"],
                "summary": "Mark notification as read",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/notifications/read-all": {
            "post": {
                "tags": ["Notifications"],
                "summary": "Mark all notifications as read",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/notifications/{id}": {
            "delete": {
                "tags": ["Notifications"],
                "summary": "Delete notification",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        }
    },
    "definitions": {
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "shortDescription": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "location": {"type": "string"},
                "category": {"type": "string"},
                "audience": {"type": "string"},
                "audienceDetails": {"type": "string"},
                "cost": {"type": "number"},
                "capacity": {"type": "integer"},
                "currentAttendees": {"type": "integer"},
                "organizer": {"type": "string"},
                "organizerEmail": {"type": "string"},
                "registrationUrl": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "approvalStatus": {"type": "string"},
                "proposedBy": {"type": "string"},
                "proposedAt": {"type": "string"},
                "approvedBy": {"type": "string"},
                "approvedAt": {"type": "string"},
                "rejectionReason": {"type": "string"},
                "adminNotes": {"type": "string"},
                "lastUpdated": {"type": "string"}
            }
        },
        "Notification": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["success", "error", "warning", "info"]},
                "title": {"type": "string"},
                "message": {"type": "string"},
                "timestamp": {"type": "string"},
                "read": {"type": "boolean"},
                "eventId": {"type": "string"}
            }
        },
        "ProposeEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "shortDescription": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "organizer": {"type": "string"},
                "organizerEmail": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "location": {"type": "string"},
                "audience": {"type": "string"},
                "audienceDetails": {"type": "string"},
                "cost": {"type": "number"},
                "capacity": {"type": "integer"},
                "registrationUrl": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "proposedBy": {"type": "string"},
                "hasReadTerms": {"type": "boolean"}
            },
            "required": ["title", "shortDescription", "description", "category", "organizer", "organizerEmail", "date", "time", "location", "audience", "hasReadTerms"]
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "apellidos": {"type": "string"},
                "edad": {"type": "integer"},
                "email": {"type": "string"},
                "telefono": {"type": "string"}
            },
            "required": ["nombre", "apellidos", "edad", "email", "telefono"]
        },
        "ChangeRequestPayload": {
            "type": "object",
            "properties": {
                "changeType": {"type": "string"},
                "currentValue": {"type": "string"},
                "requestedValue": {"type": "string"},
                "reason": {"type": "string"},
                "requesterEmail": {"type": "string"}
            },
            "required": ["changeType", "currentValue", "requestedValue", "reason"]
        },
        "ReviewEventRequest": {
            "type": "object",
            "properties": {
                "action": {"type": "string", "enum": ["approve", "reject", "request-changes"]},
                "rejectionReason": {"type": "string"},
                "adminNotes": {"type": "string"}
            },
            "required": ["action"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
