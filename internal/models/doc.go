// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package models defines the wire types of the HTTP API.

Every endpoint answers with an APIResponse envelope. Request bodies are
decoded into the request types in requests.go and checked with the shared
validator (internal/validation) before they reach the engine or a session.
The view types in views.go shape engine and session values for rendering;
they add derived fields but never change the underlying values.
*/
package models
