package gateway

// BuildDocs returns the machine-readable API description served without
// authentication on GET / and GET /docs. The payload is the public contract
// of the gateway; keep it in lockstep with the registered routes.
func BuildDocs(baseURL string) map[string]any {
	return map[string]any{
		"name":     "CoDatendechat External API",
		"version":  "1.0.0",
		"base_url": baseURL,
		"authentication": map[string]any{
			"type":        "API Key",
			"header":      "x-api-key",
			"description": "Pass your API key in the x-api-key header or as Bearer token in Authorization header",
		},
		"endpoints": map[string]any{
			"GET /contacts": map[string]any{
				"description": "List contacts",
				"permissions": []string{"contacts:read"},
				"query_params": map[string]any{
					"limit":  "number (default: 50, max: 100)",
					"offset": "number (default: 0)",
					"search": "string (search by name or number)",
				},
			},
			"GET /contacts/:id": map[string]any{
				"description": "Get contact by ID",
				"permissions": []string{"contacts:read"},
			},
			"POST /contacts": map[string]any{
				"description": "Create a new contact",
				"permissions": []string{"contacts:write"},
				"body": map[string]any{
					"name":   "string (required)",
					"number": "string (required)",
					"email":  "string (optional)",
				},
			},
			"PUT /contacts/:id": map[string]any{
				"description": "Update a contact",
				"permissions": []string{"contacts:write"},
				"body": map[string]any{
					"name":   "string",
					"number": "string",
					"email":  "string",
				},
			},
			"GET /tickets": map[string]any{
				"description": "List tickets",
				"permissions": []string{"tickets:read"},
				"query_params": map[string]any{
					"status": "open|pending|closed",
					"limit":  "number (default: 50, max: 100)",
					"offset": "number (default: 0)",
				},
			},
			"GET /tickets/:id": map[string]any{
				"description": "Get ticket by ID with messages",
				"permissions": []string{"tickets:read"},
			},
			"POST /tickets": map[string]any{
				"description": "Create a new ticket",
				"permissions": []string{"tickets:write"},
				"body": map[string]any{
					"contact_id": "string (required)",
					"queue_id":   "string (optional)",
					"status":     "open|pending (default: open)",
				},
			},
			"PUT /tickets/:id": map[string]any{
				"description": "Update a ticket",
				"permissions": []string{"tickets:write"},
				"body": map[string]any{
					"status":   "open|pending|closed",
					"queue_id": "string",
					"user_id":  "string",
				},
			},
			"POST /messages/send": map[string]any{
				"description": "Send a message",
				"permissions": []string{"messages:write"},
				"body": map[string]any{
					"number":    "string (required if no ticket_id)",
					"ticket_id": "string (required if no number)",
					"message":   "string (required)",
					"media_url": "string (optional)",
				},
			},
			"GET /messages": map[string]any{
				"description": "List messages",
				"permissions": []string{"messages:read"},
				"query_params": map[string]any{
					"ticket_id": "string (required)",
					"limit":     "number (default: 50, max: 100)",
					"offset":    "number (default: 0)",
				},
			},
			"GET /queues": map[string]any{
				"description": "List queues",
				"permissions": []string{"queues:read"},
			},
			"GET /tags": map[string]any{
				"description": "List tags",
				"permissions": []string{"tags:read"},
			},
			"GET /whatsapps": map[string]any{
				"description": "List WhatsApp connections",
				"permissions": []string{"whatsapps:read"},
			},
		},
	}
}
