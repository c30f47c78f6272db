package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ELP Tutoring API",
        "description": "Coordination backend for the ELP tutoring Discord bot",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Credential exchange"},
        {"name": "CourseRequests", "description": "Open course request drain"},
        {"name": "Requests", "description": "Class request lifecycle"},
        {"name": "TutorDemands", "description": "Tutor applications"},
        {"name": "Classes", "description": "Class listings and exports"},
        {"name": "Messages", "description": "Outbound notification drain"}
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
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange credentials for a bearer token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Auth failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/new_course_requests": {
            "get": {
                "tags": ["CourseRequests"],
                "summary": "Surface new course requests and flip them to pending",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Auth failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/course_requests_number": {
            "get": {
                "tags": ["CourseRequests"],
                "summary": "Count course requests waiting to be surfaced",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Auth failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/change_course_requests_status_to_new": {
            "put": {
                "tags": ["CourseRequests"],
                "summary": "Roll pending course requests back to new",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/cancellation_request": {
            "post": {
                "tags": ["Requests"],
                "summary": "Open a cancellation request for a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CancellationPayload"}}
                ],
                "responses": {
                    "200": {"description": "Created"},
                    "406": {"description": "Pending request exists", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "412": {"description": "Unknown class", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/rescheduling_request": {
            "post": {
                "tags": ["Requests"],
                "summary": "Open a rescheduling request for a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReschedulingPayload"}}
                ],
                "responses": {
                    "200": {"description": "Created"},
                    "402": {"description": "Date not in the future", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "406": {"description": "Pending request exists", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "408": {"description": "Invalid date format", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "412": {"description": "Unknown class", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/feedback_creation": {
            "post": {
                "tags": ["Requests"],
                "summary": "Record tutor feedback on a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FeedbackPayload"}}
                ],
                "responses": {
                    "200": {"description": "Created"},
                    "406": {"description": "Pending request exists", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "412": {"description": "Unknown class", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/tutor_demand": {
            "post": {
                "tags": ["TutorDemands"],
                "summary": "Apply to take on a course request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TutorDemandPayload"}}
                ],
                "responses": {
                    "200": {"description": "Created"},
                    "400": {"description": "Wrong date option count or unknown tutor", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "410": {"description": "Course request was taken", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "412": {"description": "Unknown course request", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/tutor_classes/{discord_id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "List a tutor's recent and upcoming classes",
                "parameters": [
                    {"name": "discord_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Auth failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/weekly_classes/export": {
            "get": {
                "tags": ["Classes"],
                "summary": "Export the weekly class roster",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string"},
                    {"name": "week", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/private_messages": {
            "get": {
                "tags": ["Messages"],
                "summary": "Drain resolved request notifications for delivery",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "LoginPayload": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "CancellationPayload": {
            "type": "object",
            "properties": {
                "class_ID": {"type": "integer"},
                "reason": {"type": "string"}
            }
        },
        "ReschedulingPayload": {
            "type": "object",
            "properties": {
                "class_ID": {"type": "integer"},
                "reason": {"type": "string"},
                "new_date": {"type": "string"}
            }
        },
        "FeedbackPayload": {
            "type": "object",
            "properties": {
                "class_ID": {"type": "integer"},
                "feedback": {"type": "string"}
            }
        },
        "TutorDemandPayload": {
            "type": "object",
            "properties": {
                "discordID": {"type": "string"},
                "courseRequestID": {"type": "integer"},
                "dateOptions": {
                    "type": "array",
                    "items": {"type": "integer"}
                }
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
